package roster

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "students.xml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestSave_Format(t *testing.T) {
	t.Parallel()

	r := New()
	r.Add("Petrov", "IVT-21", "4 5 3")
	r.Add("Ivanov & Sons", "IVT-22", "5")

	path := filepath.Join(t.TempDir(), "out.xml")
	require.NoError(t, r.Save(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	want := `<?xml version='1.0' encoding='utf-8'?>
<students>
  <student>
    <name>Ivanov &amp; Sons</name>
    <group>IVT-22</group>
    <grade>5</grade>
  </student>
  <student>
    <name>Petrov</name>
    <group>IVT-21</group>
    <grade>4 5 3</grade>
  </student>
</students>
`
	assert.Equal(t, want, string(data))
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	t.Parallel()

	src := New()
	src.Add("Сидоров С.С.", "ПИЖ-б-о-21-1", "5 4 5")
	src.Add("Antonov", "G-2", "")
	src.Add("Belov", "G-1", "3 3 3")

	path := filepath.Join(t.TempDir(), "roster.xml")
	require.NoError(t, src.Save(path))

	dst := New()
	dst.Add("Stale", "X", "1")
	require.NoError(t, dst.Load(path))

	less := func(a, b Student) bool { return a.Name < b.Name }
	if diff := cmp.Diff(src.Students(), dst.Students(), cmpopts.SortSlices(less)); diff != "" {
		t.Errorf("round trip mismatch (-saved +loaded):\n%s", diff)
	}
}

func TestLoad_KeepsFileOrderAndAnyChildOrder(t *testing.T) {
	t.Parallel()

	path := writeFile(t, `<?xml version='1.0' encoding='utf-8'?>
<students>
  <student><grade>5 5</grade><name>Zhukov</name><group>G-1</group></student>
  <student><name>Antonov</name><group>G-2</group><grade>3</grade></student>
</students>`)

	r := New()
	require.NoError(t, r.Load(path))

	want := []Student{
		{Name: "Zhukov", Group: "G-1", Grade: "5 5"},
		{Name: "Antonov", Group: "G-2", Grade: "3"},
	}
	if diff := cmp.Diff(want, r.Students()); diff != "" {
		t.Errorf("unexpected students (-want +got):\n%s", diff)
	}
}

func TestLoad_SkipsIncompleteRecords(t *testing.T) {
	t.Parallel()

	path := writeFile(t, `<students>
  <student><name>NoGrade</name><group>G-1</group></student>
  <student><name>Complete</name><group>G-1</group><grade>4</grade></student>
  <student><group>G-1</group><grade>4</grade></student>
  <student><name>Empty</name><group/><grade></grade></student>
</students>`)

	r := New()
	require.NoError(t, r.Load(path))

	want := []Student{
		{Name: "Complete", Group: "G-1", Grade: "4"},
		{Name: "Empty", Group: "", Grade: ""},
	}
	if diff := cmp.Diff(want, r.Students()); diff != "" {
		t.Errorf("unexpected students (-want +got):\n%s", diff)
	}
}

func TestLoad_EmptyRootReplacesRoster(t *testing.T) {
	t.Parallel()

	path := writeFile(t, `<?xml version='1.0' encoding='utf-8'?><students />`)

	r := New()
	r.Add("Ivanov", "G", "5")
	require.NoError(t, r.Load(path))
	assert.Zero(t, r.Len())
}

func TestLoad_MissingFileIsFileError(t *testing.T) {
	t.Parallel()

	r := New()
	r.Add("Ivanov", "G", "5")
	before := r.Students()

	err := r.Load(filepath.Join(t.TempDir(), "missing.xml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrFile), "expected ErrFile, got %v", err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
	assert.Equal(t, before, r.Students())
}

func TestLoad_MalformedXMLIsParseError(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		content string
	}{
		{name: "unclosed root", content: `<students><student><name>A</name>`},
		{name: "mismatched tags", content: `<students><student></students></student>`},
		{name: "empty file", content: ``},
		{name: "plain text", content: `not xml at all`},
		{name: "junk after root", content: `<students></students><students></students>`},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			path := writeFile(t, tc.content)
			r := New()
			r.Add("Ivanov", "G", "5")
			before := r.Students()

			err := r.Load(path)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrParse), "expected ErrParse, got %v", err)
			assert.Equal(t, before, r.Students())
		})
	}
}

func TestSave_UnwritablePathIsFileError(t *testing.T) {
	t.Parallel()

	r := New()
	err := r.Save(filepath.Join(t.TempDir(), "no", "such", "dir", "out.xml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrFile), "expected ErrFile, got %v", err)

	var rerr *Error
	require.True(t, errors.As(err, &rerr))
	assert.Equal(t, "save", rerr.Op)
}

func TestSave_RejectsTextXMLCannotCarry(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name  string
		field func(r *Roster)
		part  string
	}{
		{name: "escape sequence in name", field: func(r *Roster) { r.Add("Ivanov\x1b[A", "G", "5") }, part: "U+001B"},
		{name: "invalid UTF-8 in group", field: func(r *Roster) { r.Add("Ivanov", "G\xff", "5") }, part: "not valid UTF-8"},
		{name: "NUL in grade", field: func(r *Roster) { r.Add("Ivanov", "G", "5\x004") }, part: "U+0000"},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			path := writeFile(t, "previous content")
			r := New()
			tc.field(r)

			err := r.Save(path)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrFile), "expected ErrFile, got %v", err)
			assert.Contains(t, err.Error(), tc.part)

			data, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, "previous content", string(data))
		})
	}
}

func TestSaveLoad_KeepsTabsAndCarriageReturns(t *testing.T) {
	t.Parallel()

	src := New()
	src.Add("Ivanov\tI.", "G\r1", "5 4")

	path := filepath.Join(t.TempDir(), "roster.xml")
	require.NoError(t, src.Save(path))

	dst := New()
	require.NoError(t, dst.Load(path))
	assert.Equal(t, src.Students(), dst.Students())
}
