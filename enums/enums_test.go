package enums

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type fruit int32

const (
	apple fruit = iota
	banana
	cherry
	date
	fruitCount
)

func TestSetBasic(t *testing.T) {
	var s Set[fruit]
	assert.True(t, s.Empty())
	assert.Equal(t, 0, s.Count())

	s = SetOf(apple, cherry)
	assert.True(t, s.Has(apple))
	assert.False(t, s.Has(banana))
	assert.True(t, s.Has(cherry))
	assert.Equal(t, 2, s.Count())

	s = s.With(banana)
	assert.True(t, s.Has(banana))
	assert.Equal(t, 3, s.Count())
	// With on a present member is a no-op.
	assert.Equal(t, s, s.With(banana))

	s = s.Without(apple)
	assert.False(t, s.Has(apple))
	assert.Equal(t, 2, s.Count())
}

func TestSetOps(t *testing.T) {
	a := SetOf(apple, banana)
	b := SetOf(banana, cherry)
	assert.Equal(t, SetOf(apple, banana, cherry), a.Union(b))
	assert.Equal(t, SetOf(banana), a.Intersect(b))
	assert.Equal(t, SetOf(apple), a.Diff(b))
	assert.Equal(t, SetOf(cherry, date), a.Complement(fruitCount))
	assert.Equal(t, SetOf(apple, banana, cherry, date), All(fruitCount))
}

func TestSetMask(t *testing.T) {
	assert.Equal(t, uint64(0b101), SetOf(apple, cherry).Mask())
	assert.Equal(t, SetOf(apple, cherry), SetFromMask[fruit](0b101))
	assert.Equal(t, uint64(0b1111), All(fruitCount).Mask())
}

func TestSetMembers(t *testing.T) {
	var got []fruit
	for m := range SetOf(date, apple, cherry).Members() {
		got = append(got, m)
	}
	// Ascending order regardless of construction order.
	assert.Equal(t, []fruit{apple, cherry, date}, got)

	for m := range SetOf(apple, banana).Members() {
		assert.Equal(t, apple, m)
		break
	}
}

func TestArray(t *testing.T) {
	names := ArrayOf[fruit]("apple", "banana", "cherry", "date")
	assert.Equal(t, 4, names.Len())
	assert.Equal(t, "banana", names.At(banana))
	assert.Equal(t, "date", names.At(date))

	names.Set(cherry, "sour cherry")
	assert.Equal(t, "sour cherry", names.At(cherry))
	assert.Equal(t, []string{"apple", "banana", "sour cherry", "date"}, names.Values())

	zero := NewArray[fruit, int](fruitCount)
	assert.Equal(t, 4, zero.Len())
	assert.Equal(t, 0, zero.At(date))
}
