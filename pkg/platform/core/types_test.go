package core

import "testing"

func TestFileTypeMatches(t *testing.T) {
	if !FileTypeRegular.Matches(FileTypeRegular | FileTypeDirectory) {
		t.Error("regular should match regular|directory")
	}
	if FileTypeUnknown.Matches(FileTypeRegular) {
		t.Error("unknown should not match regular")
	}
	if !FileTypeDirectory.Matches(FileTypeAll) {
		t.Error("directory should match all")
	}
}

func TestFileTypeString(t *testing.T) {
	testCases := map[FileType]string{
		FileTypeUnknown:                     "unknown",
		FileTypeRegular:                     "regular",
		FileTypeDirectory:                   "directory",
		FileTypeRegular | FileTypeDirectory: "regular|directory",
		0:                                   "none",
	}
	for ft, want := range testCases {
		if got := ft.String(); got != want {
			t.Errorf("FileType(%d).String() = %q, want %q", ft, got, want)
		}
	}
}

func TestIsSpecialDirName(t *testing.T) {
	for _, name := range []string{".", ".."} {
		if !IsSpecialDirName(name) {
			t.Errorf("%q should be special", name)
		}
	}
	for _, name := range []string{"", "...", ".hidden", "dir"} {
		if IsSpecialDirName(name) {
			t.Errorf("%q should not be special", name)
		}
	}
}
