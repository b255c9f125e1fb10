package hub

import "testing"

func TestParseRemote(t *testing.T) {
	cases := []struct {
		url   string
		owner string
		repo  string
		ok    bool
	}{
		{"https://github.com/CreativeHandOficial/Suitcase-Stories.git", "CreativeHandOficial", "Suitcase-Stories", true},
		{"https://github.com/owner/repo", "owner", "repo", true},
		{"git@github.com:owner/repo.git", "owner", "repo", true},
		{"ssh://git@github.com/owner/repo.git", "owner", "repo", true},
		{"https://gitlab.com/owner/repo.git", "", "", false},
		{"https://github.com/owner", "", "", false},
		{"", "", "", false},
	}

	for _, tc := range cases {
		owner, repo, ok := ParseRemote(tc.url)
		if ok != tc.ok || owner != tc.owner || repo != tc.repo {
			t.Errorf("ParseRemote(%q) = (%q, %q, %v), want (%q, %q, %v)",
				tc.url, owner, repo, ok, tc.owner, tc.repo, tc.ok)
		}
	}
}

func TestCompareURL(t *testing.T) {
	got := CompareURL("owner", "repo", "develop", "feature/save-system")
	want := "https://github.com/owner/repo/compare/develop...feature/save-system"
	if got != want {
		t.Errorf("CompareURL = %q, want %q", got, want)
	}
}
