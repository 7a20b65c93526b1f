package model

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindCollection(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindDepartment, "department"},
		{KindFaculty, "faculty"},
		{KindEvent, "event"},
		{KindNotice, "notice"},
		{KindContactMessage, "contactmessage"},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.kind.Collection())
			assert.Equal(t, strings.ToLower(tt.kind.String()), tt.kind.Collection())
		})
	}
}

func TestKindCollection_Unique(t *testing.T) {
	seen := make(map[string]Kind)
	for _, k := range Kinds() {
		name := k.Collection()
		prev, dup := seen[name]
		require.False(t, dup, "collection %q used by %s and %s", name, prev, k)
		seen[name] = k
	}
	assert.Len(t, seen, len(kindCollections))
}

func TestKindCollection_UnknownPanics(t *testing.T) {
	assert.False(t, Kind("Course").Known())
	assert.Panics(t, func() { _ = Kind("Course").Collection() })
}

func TestNotice_ApplyDefaults(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)

	var n Notice
	n.ApplyDefaults(now)

	require.NotNil(t, n.Priority)
	assert.Equal(t, PriorityNormal, *n.Priority)
	require.NotNil(t, n.PublishedAt)
	assert.True(t, n.PublishedAt.Equal(now))
}

func TestNotice_ApplyDefaults_KeepsProvidedValues(t *testing.T) {
	high := "urgent"
	published := time.Date(2025, 12, 24, 0, 0, 0, 0, time.UTC)
	n := Notice{Priority: &high, PublishedAt: &published}

	n.ApplyDefaults(time.Now())

	assert.Equal(t, "urgent", *n.Priority)
	assert.True(t, n.PublishedAt.Equal(published))
}

func TestNotice_ApplyDefaults_PerCallTimestamps(t *testing.T) {
	first, second := Notice{}, Notice{}
	t1 := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Hour)

	first.ApplyDefaults(t1)
	second.ApplyDefaults(t2)

	assert.NotEqual(t, *first.PublishedAt, *second.PublishedAt)
}

func TestParseTimestamp(t *testing.T) {
	ok := []string{
		"2026-05-01T10:00:00Z",
		"2026-05-01T10:00:00.250Z",
		"2026-05-01T10:00:00",
		"2026-05-01 10:00:00",
		"2026-05-01",
	}
	for _, s := range ok {
		got, err := ParseTimestamp(s)
		require.NoError(t, err, s)
		assert.Equal(t, time.UTC, got.Location(), s)
		assert.Equal(t, 2026, got.Year())
	}

	for _, s := range []string{"", "tomorrow", "01/05/2026", "2026-13-01"} {
		_, err := ParseTimestamp(s)
		assert.Error(t, err, s)
	}
}

func TestEvent_UnmarshalJSON_ReportsField(t *testing.T) {
	var e Event
	err := json.Unmarshal([]byte(`{"title":"Fair","date":"soon"}`), &e)

	var typeErr *json.UnmarshalTypeError
	require.ErrorAs(t, err, &typeErr)
	assert.Equal(t, "date", typeErr.Field)
}
