package serialize

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEveryAuthoredTagResolves(t *testing.T) {
	for _, category := range elementCategories {
		for _, tag := range category.tags {
			require.NotEmpty(t, elementExtractorsByTag[tag], "tag %q from category %q", tag, category.name)
		}
	}
}

func TestEveryAuthoredEventTypeResolves(t *testing.T) {
	for _, category := range eventCategories {
		for _, eventType := range category.types {
			require.NotNil(t, eventExtractorByType[eventType], "type %q from category %q", eventType, category.name)
		}
	}
}

func TestInputBelongsToValueAndFilesCategories(t *testing.T) {
	require.Len(t, elementExtractorsByTag["input"], 2)
	require.Len(t, elementExtractorsByTag["textarea"], 1)
	require.Len(t, elementExtractorsByTag["video"], 1)
}

func TestUnknownDiscriminatorsAbsent(t *testing.T) {
	require.NotContains(t, elementExtractorsByTag, "div")
	require.NotContains(t, eventExtractorByType, "dblclick")
	require.NotContains(t, eventExtractorByType, "focus")
}
