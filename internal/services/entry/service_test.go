package entry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/maskfield/internal/config"
	"github.com/thenoetrevino/maskfield/internal/database"
	"github.com/thenoetrevino/maskfield/internal/mask"
	"github.com/thenoetrevino/maskfield/internal/testutil"
)

func newTestService(t *testing.T) (Service, *config.Config) {
	t.Helper()
	cfg := config.Default()
	repo := database.NewRepository(testutil.SetupTestDB(t))
	return NewService(repo, cfg, nil), cfg
}

func TestSaveEntry(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	tests := []struct {
		name        string
		req         SaveEntryRequest
		wantErr     error
		wantDisplay string
		wantLogical string
		wantDone    bool
	}{
		{
			name:        "complete phone",
			req:         SaveEntryRequest{Preset: "phone", Text: "5551234567"},
			wantDisplay: "(555) 123-4567",
			wantLogical: "5551234567",
			wantDone:    true,
		},
		{
			name:        "formatted input is re-validated",
			req:         SaveEntryRequest{Preset: "phone", Text: "555-123-4567"},
			wantDisplay: "(555) 123-4567",
			wantLogical: "5551234567",
			wantDone:    true,
		},
		{
			name:        "case transform on plate",
			req:         SaveEntryRequest{Preset: "plate", Text: "abc1234"},
			wantDisplay: "ABC-1234",
			wantLogical: "ABC1234",
			wantDone:    true,
		},
		{
			name:    "partial refused",
			req:     SaveEntryRequest{Preset: "phone", Text: "555"},
			wantErr: ErrIncompleteValue,
		},
		{
			name:        "partial allowed",
			req:         SaveEntryRequest{Preset: "phone", Text: "555", AllowPartial: true},
			wantDisplay: "(555) ___-____",
			wantLogical: "555",
		},
		{
			name:    "empty preset",
			req:     SaveEntryRequest{Text: "1"},
			wantErr: ErrEmptyPreset,
		},
		{
			name:    "unknown preset",
			req:     SaveEntryRequest{Preset: "nope", Text: "1"},
			wantErr: ErrUnknownPreset,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.SaveEntry(ctx, tt.req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Positive(t, got.ID)
			assert.Equal(t, tt.req.Preset, got.Preset)
			assert.Equal(t, tt.wantDisplay, got.DisplayText)
			assert.Equal(t, tt.wantLogical, got.LogicalText)
			assert.Equal(t, tt.wantDone, got.Complete)
			assert.Equal(t, "_", got.Placeholder)
		})
	}
}

func TestSaveEntry_StoredDisplayIsRebuildOfLogical(t *testing.T) {
	ctx := context.Background()
	svc, cfg := newTestService(t)

	saved, err := svc.SaveEntry(ctx, SaveEntryRequest{Preset: "mac", Text: "00:1a:2B:zz3c", AllowPartial: true})
	require.NoError(t, err)

	preset, err := cfg.Preset("mac")
	require.NoError(t, err)
	e, err := mask.New(preset.Mask, mask.WithText(saved.LogicalText))
	require.NoError(t, err)
	assert.Equal(t, e.DisplayText(), saved.DisplayText)
	assert.Equal(t, e.LogicalText(), saved.LogicalText)
}

func TestSaveEntry_PresetPlaceholder(t *testing.T) {
	ctx := context.Background()
	cfg := config.Default()
	cfg.Presets["pin"] = config.Preset{Mask: "####", Placeholder: "*"}
	svc := NewService(database.NewRepository(testutil.SetupTestDB(t)), cfg, nil)

	saved, err := svc.SaveEntry(ctx, SaveEntryRequest{Preset: "pin", Text: "12", AllowPartial: true})
	require.NoError(t, err)
	assert.Equal(t, "12**", saved.DisplayText)
	assert.Equal(t, "*", saved.Placeholder)
}

func TestSaveEntry_MalformedPresetMask(t *testing.T) {
	cfg := config.Default()
	cfg.Presets["broken"] = config.Preset{Mask: "##'"}
	svc := NewService(database.NewRepository(testutil.SetupTestDB(t)), cfg, nil)

	_, err := svc.SaveEntry(context.Background(), SaveEntryRequest{Preset: "broken", Text: "12"})
	assert.ErrorIs(t, err, mask.ErrMalformedMask)
}

func TestGetEntry(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	saved, err := svc.SaveEntry(ctx, SaveEntryRequest{Preset: "zip", Text: "123456789", Note: "office"})
	require.NoError(t, err)

	got, err := svc.GetEntry(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, "12345-6789", got.DisplayText)
	assert.Equal(t, "office", got.Note)

	_, err = svc.GetEntry(ctx, 0)
	assert.ErrorIs(t, err, ErrInvalidEntryID)

	_, err = svc.GetEntry(ctx, saved.ID+100)
	assert.ErrorIs(t, err, ErrEntryNotFound)
}

func TestListEntries(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	for _, req := range []SaveEntryRequest{
		{Preset: "time", Text: "0930"},
		{Preset: "zip", Text: "123456789"},
		{Preset: "time", Text: "1745"},
	} {
		_, err := svc.SaveEntry(ctx, req)
		require.NoError(t, err)
	}

	all, err := svc.ListEntries(ctx, ListEntriesRequest{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	times, err := svc.ListEntries(ctx, ListEntriesRequest{Preset: "time"})
	require.NoError(t, err)
	require.Len(t, times, 2)
	assert.Equal(t, "17:45", times[0].DisplayText)
	assert.Equal(t, "09:30", times[1].DisplayText)
}

func TestDeleteEntry(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	saved, err := svc.SaveEntry(ctx, SaveEntryRequest{Preset: "time", Text: "1200"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteEntry(ctx, saved.ID))
	assert.ErrorIs(t, svc.DeleteEntry(ctx, saved.ID), ErrEntryNotFound)
	assert.ErrorIs(t, svc.DeleteEntry(ctx, -1), ErrInvalidEntryID)
}
