package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"postboard/models"
)

// MemoryStore хранит всё в памяти процесса. Используется для локального запуска
// (DB_DRIVER=memory) и в тестах.
type MemoryStore struct {
	mu         sync.RWMutex
	now        func() time.Time
	users      map[uint]models.User
	categories map[string]models.Category
	tags       map[string]models.Tag
	posts      map[uint]memPost
	comments   map[uint]models.Comment
	nextID     map[string]uint
}

type memPost struct {
	post   models.Post
	tagIDs []uint
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		now:        time.Now,
		users:      map[uint]models.User{},
		categories: map[string]models.Category{},
		tags:       map[string]models.Tag{},
		posts:      map[uint]memPost{},
		comments:   map[uint]models.Comment{},
		nextID:     map[string]uint{},
	}
}

// WithClock подменяет источник времени для createdAt
func (s *MemoryStore) WithClock(now func() time.Time) *MemoryStore {
	s.now = now
	return s
}

func (s *MemoryStore) AddUser(u models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[u.ID] = u
}

func (s *MemoryStore) AddCategory(name string) models.Category {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c, ok := s.categories[name]; ok {
		return c
	}
	c := models.Category{ID: s.id("categories"), Name: name}
	s.categories[name] = c
	return c
}

// TagCount - число строк в таблице тегов
func (s *MemoryStore) TagCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tags)
}

func (s *MemoryStore) id(table string) uint {
	s.nextID[table]++
	return s.nextID[table]
}

func (s *MemoryStore) ListPostsByCategory(ctx context.Context, category string, offset, limit int) ([]models.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.categories[category]
	if !ok || offset < 0 || limit < 1 {
		return []models.Post{}, nil
	}
	matched := make([]memPost, 0)
	for _, p := range s.posts {
		if p.post.CategoryID == c.ID {
			matched = append(matched, p)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		a, b := matched[i].post, matched[j].post
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.ID > b.ID
	})

	out := []models.Post{}
	for i := offset; i < len(matched) && len(out) < limit; i++ {
		p := matched[i].post
		p.Tags = s.tagsByID(matched[i].tagIDs)
		p.User = s.author(p.UserID)
		out = append(out, p)
	}
	return out, nil
}

func (s *MemoryStore) FindPost(ctx context.Context, id uint) (*models.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.findPost(id)
}

func (s *MemoryStore) findPost(id uint) (*models.Post, error) {
	mp, ok := s.posts[id]
	if !ok {
		return nil, ErrNotFound
	}
	p := mp.post
	p.Tags = s.tagsByID(mp.tagIDs)
	p.User = s.author(p.UserID)
	for _, c := range s.categories {
		if c.ID == p.CategoryID {
			category := c
			p.Category = &category
		}
	}
	for _, c := range s.comments {
		if c.PostID == id {
			c.User = s.author(c.UserID)
			p.Comments = append(p.Comments, c)
		}
	}
	sort.Slice(p.Comments, func(i, j int) bool { return p.Comments[i].ID < p.Comments[j].ID })
	return &p, nil
}

func (s *MemoryStore) CreatePost(ctx context.Context, in NewPost) (*models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.categories[in.Category]
	if !ok {
		return nil, ErrCategoryNotFound
	}
	now := s.now()
	mp := memPost{post: models.Post{
		ID:         s.id("posts"),
		Title:      in.Title,
		Content:    in.Content,
		CategoryID: c.ID,
		UserID:     in.AuthorID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}}
	mp.tagIDs = s.connectTags(nil, in.Tags)
	s.posts[mp.post.ID] = mp
	return s.findPost(mp.post.ID)
}

func (s *MemoryStore) UpdateOwnedPost(ctx context.Context, id, userID uint, ch PostChanges) (*models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	mp, ok := s.posts[id]
	if !ok {
		return nil, ErrNotFound
	}
	if mp.post.UserID != userID {
		return nil, ErrForbidden
	}
	mp.post.Title = ch.Title
	mp.post.Content = ch.Content
	mp.post.UpdatedAt = s.now()
	mp.tagIDs = s.connectTags(mp.tagIDs, ch.Tags)
	s.posts[id] = mp
	return s.findPost(id)
}

func (s *MemoryStore) DeleteOwnedPost(ctx context.Context, id, userID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	mp, ok := s.posts[id]
	if !ok {
		return ErrNotFound
	}
	if mp.post.UserID != userID {
		return ErrForbidden
	}
	delete(s.posts, id)
	for cid, c := range s.comments {
		if c.PostID == id {
			delete(s.comments, cid)
		}
	}
	return nil
}

func (s *MemoryStore) CreateComment(ctx context.Context, postID, userID uint, content string) (*models.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.posts[postID]; !ok {
		return nil, ErrNotFound
	}
	if _, ok := s.users[userID]; !ok {
		return nil, ErrUnknownAuthor
	}
	now := s.now()
	c := models.Comment{
		ID:        s.id("comments"),
		Content:   content,
		PostID:    postID,
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.comments[c.ID] = c
	c.User = s.author(userID)
	return &c, nil
}

func (s *MemoryStore) UpdateOwnedComment(ctx context.Context, id, userID uint, content string) (*models.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.comments[id]
	if !ok {
		return nil, ErrNotFound
	}
	if c.UserID != userID {
		return nil, ErrForbidden
	}
	c.Content = content
	c.UpdatedAt = s.now()
	s.comments[id] = c
	c.User = s.author(userID)
	return &c, nil
}

func (s *MemoryStore) DeleteOwnedComment(ctx context.Context, id, userID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.comments[id]
	if !ok {
		return ErrNotFound
	}
	if c.UserID != userID {
		return ErrForbidden
	}
	delete(s.comments, id)
	return nil
}

func (s *MemoryStore) Ping(ctx context.Context) error { return nil }

// connectTags добавляет к linked теги с именами names, создавая отсутствующие
func (s *MemoryStore) connectTags(linked []uint, names []string) []uint {
	seen := make(map[uint]bool, len(linked))
	for _, id := range linked {
		seen[id] = true
	}
	for _, name := range names {
		t, ok := s.tags[name]
		if !ok {
			t = models.Tag{ID: s.id("tags"), Name: name}
			s.tags[name] = t
		}
		if !seen[t.ID] {
			seen[t.ID] = true
			linked = append(linked, t.ID)
		}
	}
	return linked
}

func (s *MemoryStore) tagsByID(ids []uint) []models.Tag {
	out := make([]models.Tag, 0, len(ids))
	for _, id := range ids {
		for _, t := range s.tags {
			if t.ID == id {
				out = append(out, t)
				break
			}
		}
	}
	return out
}

func (s *MemoryStore) author(id uint) *models.Author {
	u, ok := s.users[id]
	if !ok {
		return &models.Author{ID: id}
	}
	return &models.Author{ID: u.ID, FirstName: u.FirstName, LastName: u.LastName}
}
