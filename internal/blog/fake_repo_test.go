package blog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"

	"github.com/daniilsolovey/blog-portal/internal/db"
)

var errStorageDown = errors.New("storage down")

// fakeRepo is an in-memory Repo with the constraints of the real schema.
type fakeRepo struct {
	members    map[int]db.Member
	articles   map[int]db.Article
	tags       map[int]db.Tag
	categories map[int]db.Category
	comments   map[int]db.Comment
	links      map[[2]int]bool
	nextID     int

	failOn string
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		members:    map[int]db.Member{},
		articles:   map[int]db.Article{},
		tags:       map[int]db.Tag{},
		categories: map[int]db.Category{},
		comments:   map[int]db.Comment{},
		links:      map[[2]int]bool{},
	}
}

func (r *fakeRepo) id() int {
	r.nextID++
	return r.nextID
}

func (r *fakeRepo) fail(op string) error {
	if r.failOn == op {
		return fmt.Errorf("failed to %s: %w", op, errStorageDown)
	}
	return nil
}

func duplicate(what string) error {
	return fmt.Errorf("failed to insert %s: %w", what, db.ErrDuplicate)
}

func (r *fakeRepo) RunInTx(_ context.Context, fn func(Repo) error) error {
	return fn(r)
}

func (r *fakeRepo) MemberByID(_ context.Context, id int) (*db.Member, error) {
	m, ok := r.members[id]
	if !ok {
		return nil, nil
	}
	return &m, nil
}

func (r *fakeRepo) MemberByName(_ context.Context, name string) (*db.Member, error) {
	for _, m := range r.members {
		if m.Name == name {
			return &m, nil
		}
	}
	return nil, nil
}

func (r *fakeRepo) Members(_ context.Context, search db.MemberSearch) ([]db.Member, error) {
	var list []db.Member
	for _, m := range r.members {
		if search.IsActive != nil && m.IsActive != *search.IsActive {
			continue
		}
		if search.Role != nil && m.Role != *search.Role {
			continue
		}
		if !strings.Contains(strings.ToLower(m.Name), strings.ToLower(search.NameLike)) {
			continue
		}
		list = append(list, m)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func (r *fakeRepo) AddMember(_ context.Context, member *db.Member) (*db.Member, error) {
	if err := r.fail("insert member"); err != nil {
		return nil, err
	}
	for _, m := range r.members {
		if m.Name == member.Name {
			return nil, duplicate("member")
		}
	}
	member.ID = r.id()
	r.members[member.ID] = *member
	return member, nil
}

func (r *fakeRepo) UpdateMember(_ context.Context, member *db.Member, _ ...string) error {
	for _, m := range r.members {
		if m.Name == member.Name && m.ID != member.ID {
			return duplicate("member")
		}
	}
	r.members[member.ID] = *member
	return nil
}

func (r *fakeRepo) SeedOwner(ctx context.Context, member *db.Member) (bool, error) {
	for _, m := range r.members {
		if m.Role == db.RoleOwner {
			return false, nil
		}
	}
	member.Role = db.RoleOwner
	if _, err := r.AddMember(ctx, member); err != nil {
		return false, err
	}
	return true, nil
}

func (r *fakeRepo) ArticleByID(_ context.Context, id int) (*db.Article, error) {
	if err := r.fail("get article by id"); err != nil {
		return nil, err
	}
	a, ok := r.articles[id]
	if !ok {
		return nil, nil
	}
	return &a, nil
}

func (r *fakeRepo) Articles(_ context.Context, search db.ArticleSearch) ([]db.Article, error) {
	if search.OrderBy != "" && search.OrderBy != db.DefaultArticleOrder {
		return nil, fmt.Errorf("%w: %q", db.ErrInvalidOrder, search.OrderBy)
	}

	var list []db.Article
	for _, a := range r.articles {
		if search.IsDeleted != nil && a.IsDeleted != *search.IsDeleted {
			continue
		}
		hasAll := true
		for _, tagID := range search.TagIDs {
			hasAll = hasAll && r.links[[2]int{a.ID, tagID}]
		}
		if !hasAll {
			continue
		}
		if w, ok := r.members[a.WriterID]; ok {
			a.Writer = &w
		}
		list = append(list, a)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID > list[j].ID })
	return list, nil
}

func (r *fakeRepo) ArticlesCount(ctx context.Context, search db.ArticleSearch) (int, error) {
	list, err := r.Articles(ctx, search)
	return len(list), err
}

func (r *fakeRepo) AddArticle(_ context.Context, article *db.Article) (*db.Article, error) {
	for _, a := range r.articles {
		if a.Title == article.Title {
			return nil, duplicate("article")
		}
	}
	article.ID = r.id()
	r.articles[article.ID] = *article
	return article, nil
}

func (r *fakeRepo) UpdateArticle(_ context.Context, article *db.Article, _ ...string) error {
	if err := r.fail("update article"); err != nil {
		return err
	}
	for _, a := range r.articles {
		if a.Title == article.Title && a.ID != article.ID {
			return duplicate("article")
		}
	}
	r.articles[article.ID] = *article
	return nil
}

func (r *fakeRepo) SetArticleCategory(_ context.Context, articleID int, categoryID *int) error {
	a := r.articles[articleID]
	a.CategoryID = categoryID
	r.articles[articleID] = a
	return nil
}

func (r *fakeRepo) DeleteArticle(_ context.Context, id int) error {
	delete(r.articles, id)
	for cid, c := range r.comments {
		if c.ArticleID == id {
			delete(r.comments, cid)
		}
	}
	for link := range r.links {
		if link[0] == id {
			delete(r.links, link)
		}
	}
	return nil
}

func (r *fakeRepo) TagByID(_ context.Context, id int) (*db.Tag, error) {
	t, ok := r.tags[id]
	if !ok {
		return nil, nil
	}
	return &t, nil
}

func (r *fakeRepo) Tags(_ context.Context, hideUnused bool) ([]db.Tag, error) {
	list := []db.Tag{}
	for _, t := range r.tags {
		if hideUnused && !r.tagUsed(t.ID) {
			continue
		}
		list = append(list, t)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func (r *fakeRepo) tagUsed(id int) bool {
	for link := range r.links {
		if link[1] == id {
			return true
		}
	}
	return false
}

func (r *fakeRepo) TagsByArticleIDs(_ context.Context, articleIDs []int) (map[int][]db.Tag, error) {
	result := map[int][]db.Tag{}
	for _, articleID := range articleIDs {
		for link := range r.links {
			if link[0] == articleID {
				result[articleID] = append(result[articleID], r.tags[link[1]])
			}
		}
		sort.Slice(result[articleID], func(i, j int) bool { return result[articleID][i].ID < result[articleID][j].ID })
	}
	return result, nil
}

func (r *fakeRepo) AddTag(_ context.Context, tag *db.Tag) (*db.Tag, error) {
	for _, t := range r.tags {
		if t.Name == tag.Name {
			return nil, duplicate("tag")
		}
	}
	tag.ID = r.id()
	r.tags[tag.ID] = *tag
	return tag, nil
}

func (r *fakeRepo) EnsureTag(ctx context.Context, name string) (*db.Tag, error) {
	for _, t := range r.tags {
		if t.Name == name {
			return &t, nil
		}
	}
	return r.AddTag(ctx, &db.Tag{Name: name})
}

func (r *fakeRepo) DeleteTag(_ context.Context, id int) error {
	delete(r.tags, id)
	for link := range r.links {
		if link[1] == id {
			delete(r.links, link)
		}
	}
	return nil
}

func (r *fakeRepo) AttachTag(_ context.Context, articleID, tagID int) error {
	r.links[[2]int{articleID, tagID}] = true
	return nil
}

func (r *fakeRepo) DetachTag(_ context.Context, articleID, tagID int) error {
	delete(r.links, [2]int{articleID, tagID})
	return nil
}

func (r *fakeRepo) CategoryByID(_ context.Context, id int) (*db.Category, error) {
	c, ok := r.categories[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r *fakeRepo) Categories(_ context.Context, hideUnused bool) ([]db.Category, error) {
	list := []db.Category{}
	for _, c := range r.categories {
		used := false
		for _, a := range r.articles {
			used = used || (a.CategoryID != nil && *a.CategoryID == c.ID)
		}
		if hideUnused && !used {
			continue
		}
		list = append(list, c)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func (r *fakeRepo) AddCategory(_ context.Context, category *db.Category) (*db.Category, error) {
	for _, c := range r.categories {
		if c.Name == category.Name {
			return nil, duplicate("category")
		}
	}
	category.ID = r.id()
	r.categories[category.ID] = *category
	return category, nil
}

func (r *fakeRepo) EnsureCategory(ctx context.Context, name string) (*db.Category, error) {
	for _, c := range r.categories {
		if c.Name == name {
			return &c, nil
		}
	}
	return r.AddCategory(ctx, &db.Category{Name: name})
}

func (r *fakeRepo) DeleteCategory(_ context.Context, id int) error {
	delete(r.categories, id)
	for aid, a := range r.articles {
		if a.CategoryID != nil && *a.CategoryID == id {
			a.CategoryID = nil
			r.articles[aid] = a
		}
	}
	return nil
}

func (r *fakeRepo) CommentByID(_ context.Context, id int) (*db.Comment, error) {
	c, ok := r.comments[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r *fakeRepo) Comments(_ context.Context, search db.CommentSearch) ([]db.Comment, int, error) {
	list := []db.Comment{}
	for _, c := range r.comments {
		if search.ArticleID != nil && c.ArticleID != *search.ArticleID {
			continue
		}
		list = append(list, c)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	total := len(list)
	if search.Limit > 0 && len(list) > search.Limit {
		list = list[:search.Limit]
	}
	return list, total, nil
}

func (r *fakeRepo) AddComment(_ context.Context, comment *db.Comment) (*db.Comment, error) {
	if (comment.MemberID == nil) == (comment.CommenterName == nil) {
		return nil, errors.New("comments_single_author check violated")
	}
	comment.ID = r.id()
	r.comments[comment.ID] = *comment
	return comment, nil
}

func (r *fakeRepo) UpdateComment(_ context.Context, comment *db.Comment, _ ...string) error {
	r.comments[comment.ID] = *comment
	return nil
}

func (r *fakeRepo) DeleteComment(_ context.Context, id int) error {
	delete(r.comments, id)
	return nil
}

func (r *fakeRepo) LikeComment(_ context.Context, id int) (bool, error) {
	c, ok := r.comments[id]
	if !ok {
		return false, nil
	}
	c.Likes++
	r.comments[id] = c
	return true, nil
}

func (r *fakeRepo) DislikeComment(_ context.Context, id int) (bool, error) {
	c, ok := r.comments[id]
	if !ok {
		return false, nil
	}
	c.Dislikes++
	r.comments[id] = c
	return true, nil
}

// plainHasher prefixes passwords and counts Hash calls.
type plainHasher struct {
	calls int
}

func (h *plainHasher) Hash(password string) (string, error) {
	h.calls++
	return "hashed:" + password, nil
}

func (h *plainHasher) Verify(password, digest string) bool {
	return digest == "hashed:"+password
}

func noOpLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fixture is a manager over a fake repo seeded with one member per tier.
type fixture struct {
	repo    *fakeRepo
	hasher  *plainHasher
	manager *Manager

	owner, manager2, member, inactive *Member
}

func newFixture() *fixture {
	f := &fixture{repo: newFakeRepo(), hasher: &plainHasher{}}
	f.manager = newManager(f.repo, f.hasher, noOpLogger())

	add := func(name string, role Role, active bool) *Member {
		m, err := f.repo.AddMember(context.Background(), &db.Member{
			Name: name, HashedPassword: "hashed:pw", Role: int(role), IsActive: active,
		})
		if err != nil {
			panic(err)
		}
		member := NewMember(m)
		return &member
	}

	f.owner = add("Owner", RoleOwner, true)
	f.manager2 = add("Manager", RoleManager, true)
	f.member = add("Member", RoleMember, true)
	f.inactive = add("Inactive", RoleMember, false)

	return f
}

func (f *fixture) article(writer *Member, title string, flagged bool) int {
	a, err := f.repo.AddArticle(context.Background(), &db.Article{Title: title, WriterID: writer.ID, IsDeleted: flagged})
	if err != nil {
		panic(err)
	}
	return a.ID
}

func ptr[T any](v T) *T {
	return &v
}
