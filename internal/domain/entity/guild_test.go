package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_DropsNullElements(t *testing.T) {
	doc := `{
		"id": "g-1",
		"guildName": "Lanternas",
		"members": [null, {"id": "m-1", "name": "Ana", "inventory": [null]}],
		"items": [null],
		"bases": [{"id": "b-1", "rooms": [null, {"id": "r-1", "furnitures": [null]}]}, null],
		"domains": [{"id": "d-1", "buildings": [null], "units": [null]}],
		"npcs": [null],
		"logs": [null],
		"quests": [null]
	}`

	var s GuildState
	require.NoError(t, json.Unmarshal([]byte(doc), &s))

	require.NotPanics(t, func() { Normalize(&s) })

	require.Len(t, s.Members, 1)
	assert.Empty(t, s.Members[0].Inventory)
	assert.NotNil(t, s.Members[0].Inventory)
	assert.Empty(t, s.Items)
	require.Len(t, s.Bases, 1)
	require.Len(t, s.Bases[0].Rooms, 1)
	assert.Empty(t, s.Bases[0].Rooms[0].Furnitures)
	require.Len(t, s.Domains, 1)
	assert.Empty(t, s.Domains[0].Buildings)
	assert.Empty(t, s.Domains[0].Units)
	assert.Empty(t, s.NPCs)
	assert.Empty(t, s.Logs)
	assert.Empty(t, s.Quests)

	require.NotPanics(t, func() { s.Clone() })
}

func TestNormalize_FillsMissingCollections(t *testing.T) {
	s := &GuildState{ID: "g-1"}

	Normalize(s)

	assert.NotNil(t, s.Members)
	assert.NotNil(t, s.Items)
	assert.NotNil(t, s.Quests)
	assert.Equal(t, DefaultCalendar(), s.Calendar)
}
