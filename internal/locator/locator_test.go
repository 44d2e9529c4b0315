package locator

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRead_CanonicalKey(t *testing.T) {
	id, ok := Read("https://example.com/menu?restaurantId=trattoria&lang=it")
	assert.True(t, ok)
	assert.Equal(t, "trattoria", id)
}

func TestRead_DeprecatedAlias(t *testing.T) {
	id, ok := Read("https://example.com/menu?r=osteria")
	assert.True(t, ok)
	assert.Equal(t, "osteria", id)
}

func TestRead_CanonicalWinsOverAlias(t *testing.T) {
	id, ok := Read("https://example.com/menu?r=old&restaurantId=new")
	assert.True(t, ok)
	assert.Equal(t, "new", id)
}

func TestRead_MissingAndMalformed(t *testing.T) {
	_, ok := Read("https://example.com/menu?lang=it")
	assert.False(t, ok)

	_, ok = Read("://not-a-url")
	assert.False(t, ok)
}

func TestSave_SetsCanonicalAndDropsAlias(t *testing.T) {
	out := Save("https://example.com/menu?r=old&lang=it&table=4", "trattoria")

	u, err := url.Parse(out)
	assert.NoError(t, err)
	q := u.Query()
	assert.Equal(t, "trattoria", q.Get("restaurantId"))
	assert.Empty(t, q.Get("r"))
	assert.Equal(t, "it", q.Get("lang"))
	assert.Equal(t, "4", q.Get("table"))
}

func TestSave_EncodesSpecialCharacters(t *testing.T) {
	out := Save("https://example.com/menu", "Da Mario & Figli")

	id, ok := Read(out)
	assert.True(t, ok)
	assert.Equal(t, "Da Mario & Figli", id)
}

func TestClear_RemovesBothKeysKeepsTheRest(t *testing.T) {
	out := Clear("https://example.com/menu?restaurantId=a&r=b&lang=it")

	u, err := url.Parse(out)
	assert.NoError(t, err)
	q := u.Query()
	assert.Empty(t, q.Get("restaurantId"))
	assert.Empty(t, q.Get("r"))
	assert.Equal(t, "it", q.Get("lang"))
}
