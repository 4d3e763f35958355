package specification

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeywordMatchClause(t *testing.T) {
	sql, args := KeywordMatch{Keywords: []string{"Laptop", "hp"}}.Clause()

	assert.Contains(t, sql, " OR ")
	assert.Len(t, args, 8)
	assert.Equal(t, "%laptop%", args[0])
	assert.Equal(t, "%hp%", args[4])
}

func TestEmptyConditionsAreSkipped(t *testing.T) {
	sql, args := AllOf{Conditions: []Condition{
		KeywordMatch{},
		CategoryMatch{},
		PriceAtMost{Max: 100},
	}}.Clause()

	assert.Equal(t, "precio <= ?", sql)
	assert.Equal(t, []interface{}{100.0}, args)

	sql, args = AnyOf{}.Clause()
	assert.Empty(t, sql)
	assert.Nil(t, args)
}

func TestAnyOfJoinsWithOr(t *testing.T) {
	sql, args := AnyOf{Conditions: []Condition{
		CategoryMatch{Categories: []string{"tv"}},
		PriceAtLeast{Min: 10},
	}}.Clause()

	assert.Equal(t, "((LOWER(categoria) LIKE ?) OR precio >= ?)", sql)
	assert.Equal(t, []interface{}{"%tv%", 10.0}, args)
}
