package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeBuildingList(t *testing.T, lines string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "buildings.txt")
	require.NoError(t, os.WriteFile(path, []byte(lines), 0o644))
	return path
}

func TestLoadSortsAndSkipsBlanks(t *testing.T) {
	t.Parallel()

	path := writeBuildingList(t, "SAS Hall\n\nCox Hall\n\n\nDabney Hall\nCox Hall\n")
	cat, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, []string{"Cox Hall", "Dabney Hall", "SAS Hall"}, cat.Buildings())
}

func TestLoadMissingFileFails(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
}

func TestDepartmentCode(t *testing.T) {
	t.Parallel()

	cat := New(nil)
	code, ok := cat.DepartmentCode("Mathematics")
	require.True(t, ok)
	require.Equal(t, "NCSU-COS-MATH", code)

	_, ok = cat.DepartmentCode("Basket Weaving")
	require.False(t, ok)
}

func TestDepartmentsOrderIsDeterministic(t *testing.T) {
	t.Parallel()

	cat := New(nil)
	first := cat.Departments()
	require.NotEmpty(t, first)
	require.Equal(t, "Other", first[len(first)-1])
	for i := 0; i < 20; i++ {
		require.Equal(t, first, New(nil).Departments())
	}
}

func TestBuildingOptionsForRestrictedDepartment(t *testing.T) {
	t.Parallel()

	cat := New([]string{"Cox Hall", "Dabney Hall", "SAS Hall"})
	got := cat.BuildingOptionsFor("Mathematics")
	require.Equal(t, []string{"SAS Hall", "Cox Hall", "Dabney Hall", "Language and Computer Laboratories"}, got)
}

func TestBuildingOptionsForUnrestrictedDepartment(t *testing.T) {
	t.Parallel()

	cat := New([]string{"SAS Hall", "Cox Hall", "Dabney Hall"})
	full := []string{"Cox Hall", "Dabney Hall", "SAS Hall"}
	require.Equal(t, full, cat.BuildingOptionsFor("Other"))
	require.Equal(t, full, cat.BuildingOptionsFor("Biological Sciences"))
	require.Equal(t, full, cat.BuildingOptionsFor("never heard of it"))
}
