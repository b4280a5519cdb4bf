package release

import (
	"reflect"
	"testing"
)

func TestExtractEpisode(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		expected *EpisodeInfo
	}{
		{
			name:  "standard episode",
			title: "Breaking Bad S05E14 720p HDTV x264-ASAP",
			expected: &EpisodeInfo{
				Season:   5,
				Seasons:  []int{5},
				Episodes: []int{14},
			},
		},
		{
			name:  "multi episode dashed",
			title: "Show S08E01-E02 1080p WEB-DL",
			expected: &EpisodeInfo{
				Season:   8,
				Seasons:  []int{8},
				Episodes: []int{1, 2},
			},
		},
		{
			name:  "multi episode concatenated",
			title: "Show S08E01E02E03 1080p",
			expected: &EpisodeInfo{
				Season:   8,
				Seasons:  []int{8},
				Episodes: []int{1, 2, 3},
			},
		},
		{
			name:  "cross notation",
			title: "Firefly 1x05 HDTV XviD-SFM",
			expected: &EpisodeInfo{
				Season:   1,
				Seasons:  []int{1},
				Episodes: []int{5},
			},
		},
		{
			name:  "season pack",
			title: "True Detective S01 1080p BluRay x264",
			expected: &EpisodeInfo{
				Season:       1,
				Seasons:      []int{1},
				IsSeasonPack: true,
			},
		},
		{
			name:  "season word",
			title: "True Detective Season 2 1080p",
			expected: &EpisodeInfo{
				Season:       2,
				Seasons:      []int{2},
				IsSeasonPack: true,
			},
		},
		{
			name:  "complete series range",
			title: "The Wire S01-S05 COMPLETE 1080p BluRay",
			expected: &EpisodeInfo{
				Season:           1,
				Seasons:          []int{1, 2, 3, 4, 5},
				IsSeasonPack:     true,
				IsCompleteSeries: true,
			},
		},
		{
			name:  "partial season range is not complete",
			title: "The Wire S03-S05 1080p",
			expected: &EpisodeInfo{
				Season:       3,
				Seasons:      []int{3, 4, 5},
				IsSeasonPack: true,
			},
		},
		{
			name:  "seasons word range",
			title: "Seinfeld Seasons 1-9 DVDRip",
			expected: &EpisodeInfo{
				Season:           1,
				Seasons:          []int{1, 2, 3, 4, 5, 6, 7, 8, 9},
				IsSeasonPack:     true,
				IsCompleteSeries: true,
			},
		},
		{
			name:  "daily show",
			title: "The Daily Show 2023 05 12 720p WEB h264",
			expected: &EpisodeInfo{
				IsDaily: true,
				AirDate: "2023-05-12",
			},
		},
		{
			name:  "anime absolute numbering",
			title: "One Piece - 1064 1080p WEB",
			expected: &EpisodeInfo{
				AbsoluteEpisode: 1064,
			},
		},
		{
			name:     "plausible year is not an absolute episode",
			title:    "Show - 1999 1080p",
			expected: nil,
		},
		{
			name:     "invalid daily month",
			title:    "Show 2023 13 45 720p",
			expected: nil,
		},
		{
			name:     "movie with year only",
			title:    "The Matrix 1999 1080p BluRay",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _, found := ExtractEpisode(tt.title)
			if tt.expected == nil {
				if found {
					t.Fatalf("expected no episode info, got %+v", got)
				}
				return
			}
			if !found {
				t.Fatal("expected episode info, got none")
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("expected %+v, got %+v", tt.expected, got)
			}
		})
	}
}

func TestExtractEpisodeOffset(t *testing.T) {
	// The offset marks the title/quality boundary for clean title
	// derivation.
	_, offset, found := ExtractEpisode("Breaking Bad S05E14 720p")
	if !found {
		t.Fatal("expected episode info")
	}
	if offset != len("Breaking Bad ") {
		t.Errorf("expected offset %d, got %d", len("Breaking Bad "), offset)
	}
}
