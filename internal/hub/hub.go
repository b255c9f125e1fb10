// Package hub handles the pull-request step: it maps the origin remote
// to a GitHub owner/repo pair, builds compare URLs, and opens pull
// requests through the API when a token is available.
package hub

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/go-github/v77/github"
)

// ParseRemote extracts owner and repository name from a GitHub remote
// URL. Supports https, ssh scp-style and ssh:// forms; ok is false for
// anything else.
func ParseRemote(url string) (owner, repo string, ok bool) {
	url = strings.TrimSpace(url)
	url = strings.TrimSuffix(url, ".git")

	var path string
	switch {
	case strings.HasPrefix(url, "https://github.com/"):
		path = strings.TrimPrefix(url, "https://github.com/")
	case strings.HasPrefix(url, "http://github.com/"):
		path = strings.TrimPrefix(url, "http://github.com/")
	case strings.HasPrefix(url, "git@github.com:"):
		path = strings.TrimPrefix(url, "git@github.com:")
	case strings.HasPrefix(url, "ssh://git@github.com/"):
		path = strings.TrimPrefix(url, "ssh://git@github.com/")
	default:
		return "", "", false
	}

	parts := strings.Split(path, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}
	return parts[0], parts[1], true
}

// CompareURL builds the GitHub compare page URL for opening a pull
// request from branch into base.
func CompareURL(owner, repo, base, branch string) string {
	return fmt.Sprintf("https://github.com/%s/%s/compare/%s...%s", owner, repo, base, branch)
}

// OpenPullRequest creates a pull request from head into base and
// returns its HTML URL.
func OpenPullRequest(ctx context.Context, token, owner, repo, base, head, title, body string) (string, error) {
	client := github.NewClient(nil).WithAuthToken(token)

	pr, _, err := client.PullRequests.Create(ctx, owner, repo, &github.NewPullRequest{
		Title: github.Ptr(title),
		Head:  github.Ptr(head),
		Base:  github.Ptr(base),
		Body:  github.Ptr(body),
	})
	if err != nil {
		return "", fmt.Errorf("failed to create pull request: %w", err)
	}
	return pr.GetHTMLURL(), nil
}
