package db

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/go-pg/pg/v10"
	"github.com/go-pg/pg/v10/orm"
)

const DefaultArticleOrder = "-create_time"

var (
	articleOrder = map[string]string{
		"create_time": Columns.Article.CreateTime,
		"update_time": Columns.Article.UpdateTime,
		"title":       Columns.Article.Title,
	}
	commentOrder = map[string]string{
		"create_time": Columns.Comment.CreateTime,
		"likes":       Columns.Comment.Likes,
		"dislikes":    Columns.Comment.Dislikes,
	}
	likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
)

// ArticleSearch holds optional article predicates; zero fields are ignored.
type ArticleSearch struct {
	TitleLike     string
	ContentHas    string
	CategoryID    *int
	TagIDs        []int // has-all-of
	WriterIDs     []int // has-all-of over the single writer
	CreatedAfter  *time.Time
	CreatedBefore *time.Time
	UpdatedAfter  *time.Time
	UpdatedBefore *time.Time
	IsDeleted     *bool

	OrderBy string // column from the allow-list, "-" prefix for descending
	Offset  int
	Limit   int
}

func (s ArticleSearch) where(query *orm.Query) *orm.Query {
	if s.TitleLike != "" {
		query = query.Where(`"t"."title" ILIKE ?`, contains(s.TitleLike))
	}

	if s.ContentHas != "" {
		query = query.Where(`"t"."content" ILIKE ?`, contains(s.ContentHas))
	}

	if s.CategoryID != nil {
		query = query.Where(`"t"."category_id" = ?`, *s.CategoryID)
	}

	if ids := distinct(s.TagIDs); len(ids) > 0 {
		query = query.Where(`"t"."id" IN (
			SELECT "at"."article_id" FROM "article_tags" AS "at"
			WHERE "at"."tag_id" IN (?)
			GROUP BY "at"."article_id"
			HAVING count(DISTINCT "at"."tag_id") = ?)`, pg.In(ids), len(ids))
	}

	// An article has exactly one writer, so more than one distinct id cannot all match.
	switch ids := distinct(s.WriterIDs); {
	case len(ids) == 1:
		query = query.Where(`"t"."writer_id" = ?`, ids[0])
	case len(ids) > 1:
		query = query.Where(`FALSE`)
	}

	if s.CreatedAfter != nil {
		query = query.Where(`"t"."create_time" > ?`, *s.CreatedAfter)
	}

	if s.CreatedBefore != nil {
		query = query.Where(`"t"."create_time" < ?`, *s.CreatedBefore)
	}

	if s.UpdatedAfter != nil {
		query = query.Where(`"t"."update_time" > ?`, *s.UpdatedAfter)
	}

	if s.UpdatedBefore != nil {
		query = query.Where(`"t"."update_time" < ?`, *s.UpdatedBefore)
	}

	if s.IsDeleted != nil {
		query = query.Where(`"t"."is_deleted" = ?`, *s.IsDeleted)
	}

	return query
}

func (s ArticleSearch) apply(query *orm.Query) (*orm.Query, error) {
	orderBy := s.OrderBy
	if orderBy == "" {
		orderBy = DefaultArticleOrder
	}

	order, err := orderExpr(orderBy, articleOrder)
	if err != nil {
		return nil, err
	}

	return paginate(s.where(query).OrderExpr(order), s.Offset, s.Limit), nil
}

// MemberSearch holds optional member predicates.
type MemberSearch struct {
	NameLike string
	Role     *int
	IsActive *bool

	Offset int
	Limit  int
}

func (s MemberSearch) apply(query *orm.Query) *orm.Query {
	if s.NameLike != "" {
		query = query.Where(`"t"."name" ILIKE ?`, contains(s.NameLike))
	}

	if s.Role != nil {
		query = query.Where(`"t"."role" = ?`, *s.Role)
	}

	if s.IsActive != nil {
		query = query.Where(`"t"."is_active" = ?`, *s.IsActive)
	}

	return paginate(query, s.Offset, s.Limit)
}

// CommentSearch holds optional comment predicates.
type CommentSearch struct {
	ArticleID *int
	MemberID  *int

	OrderBy string
	Offset  int
	Limit   int
}

func (s CommentSearch) apply(query *orm.Query) (*orm.Query, error) {
	if s.ArticleID != nil {
		query = query.Where(`"t"."article_id" = ?`, *s.ArticleID)
	}

	if s.MemberID != nil {
		query = query.Where(`"t"."member_id" = ?`, *s.MemberID)
	}

	orderBy := s.OrderBy
	if orderBy == "" {
		orderBy = Columns.Comment.CreateTime
	}

	order, err := orderExpr(orderBy, commentOrder)
	if err != nil {
		return nil, err
	}

	return paginate(query.OrderExpr(order), s.Offset, s.Limit), nil
}

// orderExpr turns "key" or "-key" into an ORDER BY expression with an id tiebreaker.
func orderExpr(orderBy string, allowed map[string]string) (string, error) {
	direction := "ASC"
	key := orderBy
	if strings.HasPrefix(key, "-") {
		direction, key = "DESC", key[1:]
	}

	column, ok := allowed[key]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidOrder, orderBy)
	}

	return fmt.Sprintf(`"t"."%s" %s, "t"."id" %s`, column, direction, direction), nil
}

func paginate(query *orm.Query, offset, limit int) *orm.Query {
	if offset > 0 {
		query = query.Offset(offset)
	}

	if limit > 0 {
		query = query.Limit(limit)
	}

	return query
}

func contains(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}

func distinct(ids []int) []int {
	if len(ids) == 0 {
		return nil
	}

	seen := make(map[int]struct{}, len(ids))
	result := make([]int, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; !ok {
			seen[id] = struct{}{}
			result = append(result, id)
		}
	}
	sort.Ints(result)

	return result
}
