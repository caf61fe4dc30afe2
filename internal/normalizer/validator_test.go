package normalizer

import (
	"errors"
	"testing"

	"wikiscraper/internal/models"
)

func TestValidator_Validate(t *testing.T) {
	tests := []struct {
		name    string
		raw     *models.RawArticle
		wantErr error
	}{
		{
			name:    "nil raw article",
			raw:     nil,
			wantErr: ErrNilRawArticle,
		},
		{
			name:    "missing page",
			raw:     &models.RawArticle{Title: "Nonexistent", PageID: 1, Missing: true},
			wantErr: ErrPageMissing,
		},
		{
			name:    "empty title",
			raw:     &models.RawArticle{Title: "   ", PageID: 1},
			wantErr: ErrMissingTitle,
		},
		{
			name:    "zero page id",
			raw:     &models.RawArticle{Title: "Python"},
			wantErr: ErrMissingPageID,
		},
		{
			name: "valid with only mandatory fields",
			raw:  &models.RawArticle{Title: "Python", PageID: 23862},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewValidator().Validate(tt.raw)

			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("Validate() unexpected error: %v", err)
				}

				return
			}

			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidator_NotFoundAndMalformedAreDistinguishable(t *testing.T) {
	v := NewValidator()

	notFound := v.Validate(&models.RawArticle{Title: "X", PageID: 1, Missing: true})
	malformed := v.Validate(&models.RawArticle{PageID: 1})

	if errors.Is(notFound, ErrMissingTitle) || errors.Is(malformed, ErrPageMissing) {
		t.Fatal("not-found and malformed classifications overlap")
	}

	if notFound.Error() == malformed.Error() {
		t.Error("expected distinguishable messages for not-found and malformed input")
	}
}
