package service

import (
	"testing"
)

func TestParseSections(t *testing.T) {
	testCases := []struct {
		name        string
		raw         string
		wantLen     int
		wantLessons int
	}{
		{"empty string", "", 0, 0},
		{"malformed json degrades to empty", "{not json", 0, 0},
		{"wrong shape degrades to empty", `{"title":"x"}`, 0, 0},
		{
			"sections with lessons",
			`[{"title":"Intro","lessons":[{"title":"Welcome","type":"Video","videoUrl":"v.mp4"}]},{"title":"Basics"}]`,
			2, 1,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			sections := ParseSections(tc.raw)

			if len(sections) != tc.wantLen {
				t.Fatalf("Expected %d sections, got %d", tc.wantLen, len(sections))
			}
			if tc.wantLen == 0 {
				return
			}
			if len(sections[0].Lessons) != tc.wantLessons {
				t.Errorf("Expected %d lessons in first section, got %d", tc.wantLessons, len(sections[0].Lessons))
			}
			for i, section := range sections {
				if section.ID.IsZero() {
					t.Errorf("Section %d was not assigned an id", i)
				}
				if section.Lessons == nil {
					t.Errorf("Section %d lessons should default to an empty slice", i)
				}
				for j, lesson := range section.Lessons {
					if lesson.ID.IsZero() {
						t.Errorf("Lesson %d of section %d was not assigned an id", j, i)
					}
				}
			}
		})
	}
}
