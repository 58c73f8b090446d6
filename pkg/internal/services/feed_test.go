package services

import (
	"testing"
	"time"
)

func TestFeedFollowsAuthors(t *testing.T) {
	useTestDatabase(t)

	reader := makeTestAccount(t, "reader")
	author := makeTestAccount(t, "author")
	stranger := makeTestAccount(t, "stranger")

	post := makeTestPost(t, author, "from a followed author", nil, time.Now().UTC())
	makeTestPost(t, stranger, "from a stranger", nil, time.Now().UTC())

	empty, err := GetFeed(reader, "")
	if err != nil {
		t.Fatalf("unable to get feed: %v", err)
	}
	if len(empty.Items) != 0 || empty.Count != 0 {
		t.Errorf("feed before following should be empty, got %d items", len(empty.Items))
	}

	if _, err := FollowAccount(reader, author); err != nil {
		t.Fatalf("unable to follow: %v", err)
	}

	feed, err := GetFeed(reader, "")
	if err != nil {
		t.Fatalf("unable to get feed: %v", err)
	}
	if len(feed.Items) != 1 || feed.Items[0].ID != post.ID {
		t.Fatalf("feed after following should contain exactly the followed author's post, got %d items", len(feed.Items))
	}

	// The stranger's post must never leak into the feed.
	for _, item := range feed.Items {
		if item.AuthorID == stranger.ID {
			t.Error("feed contains a post from an unfollowed author")
		}
	}
}

func TestFeedNewestFirst(t *testing.T) {
	useTestDatabase(t)

	reader := makeTestAccount(t, "reader")
	author := makeTestAccount(t, "author")
	if _, err := FollowAccount(reader, author); err != nil {
		t.Fatalf("unable to follow: %v", err)
	}

	base := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	makeTestPost(t, author, "older", nil, base)
	makeTestPost(t, author, "newer", nil, base.Add(time.Hour))

	feed, err := GetFeed(reader, "")
	if err != nil {
		t.Fatalf("unable to get feed: %v", err)
	}
	if len(feed.Items) != 2 {
		t.Fatalf("feed has %d items, want 2", len(feed.Items))
	}
	if feed.Items[0].Text != "newer" {
		t.Errorf("feed is not newest-first: got %q at the top", feed.Items[0].Text)
	}
}
