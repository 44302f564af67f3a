package blog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

var ErrNotFound = errors.New("post not found")

type Post struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	Date    string   `json:"date"`
	Tags    []string `json:"tags"`
	Content []string `json:"content"`
}

// Summary is the first paragraph of the post.
func (p Post) Summary() string {
	if len(p.Content) == 0 {
		return ""
	}
	return p.Content[0]
}

// Store reads posts from a JSON file on every call so edits show up without
// a restart.
type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

func (s *Store) List() ([]Post, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("reading posts: %w", err)
	}
	var posts []Post
	if err := json.Unmarshal(data, &posts); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", s.path, err)
	}
	return posts, nil
}

func (s *Store) Find(id string) (*Post, error) {
	posts, err := s.List()
	if err != nil {
		return nil, err
	}
	for i := range posts {
		if posts[i].ID == id {
			return &posts[i], nil
		}
	}
	return nil, ErrNotFound
}
