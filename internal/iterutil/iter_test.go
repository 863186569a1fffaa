package iterutil_test

import (
	"slices"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/karupanerura/lazyload/internal/iterutil"
)

type room struct {
	ID   string
	Name string
}

func roomID(r room) string {
	return r.ID
}

func TestUniqBy(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		name  string
		input []room
		want  []room
	}{
		{
			name:  "empty",
			input: nil,
			want:  nil,
		},
		{
			name:  "no duplicates",
			input: []room{{ID: "a"}, {ID: "b"}},
			want:  []room{{ID: "a"}, {ID: "b"}},
		},
		{
			name:  "first value wins",
			input: []room{{ID: "a", Name: "first"}, {ID: "b"}, {ID: "a", Name: "second"}},
			want:  []room{{ID: "a", Name: "first"}, {ID: "b"}},
		},
		{
			name:  "all duplicates",
			input: []room{{ID: "a"}, {ID: "a"}, {ID: "a"}},
			want:  []room{{ID: "a"}},
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := slices.Collect(iterutil.UniqBy(slices.Values(tt.input), roomID))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("UniqBy() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestUniqBy_Break(t *testing.T) {
	t.Parallel()

	input := []room{{ID: "a"}, {ID: "a"}, {ID: "b"}, {ID: "c"}}
	var got []string
	for r := range iterutil.UniqBy(slices.Values(input), roomID) {
		got = append(got, r.ID)
		if len(got) == 2 {
			break
		}
	}
	if diff := cmp.Diff([]string{"a", "b"}, got); diff != "" {
		t.Errorf("UniqBy() mismatch (-want +got):\n%s", diff)
	}
}

func TestMap(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		name  string
		input []int
		want  []string
	}{
		{
			name:  "empty",
			input: nil,
			want:  nil,
		},
		{
			name:  "values",
			input: []int{138, 135, 160},
			want:  []string{"138", "135", "160"},
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := slices.Collect(iterutil.Map(slices.Values(tt.input), strconv.Itoa))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Map() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMap_Break(t *testing.T) {
	t.Parallel()

	var got []string
	for s := range iterutil.Map(slices.Values([]int{1, 2, 3}), strconv.Itoa) {
		got = append(got, s)
		if len(got) == 1 {
			break
		}
	}
	if diff := cmp.Diff([]string{"1"}, got); diff != "" {
		t.Errorf("Map() mismatch (-want +got):\n%s", diff)
	}
}
