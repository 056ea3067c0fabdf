// nolint
//
//lint:file-ignore U1000 ignore unused code, it's generated
package db

import (
	"time"
)

var Columns = struct {
	Article struct {
		ID, Title, Content, CreateTime, UpdateTime, IsDeleted, WriterID, CategoryID string

		Writer, Category string
	}
	ArticleTag struct {
		ArticleID, TagID string

		Tag string
	}
	Category struct {
		ID, Name string
	}
	Comment struct {
		ID, Content, CommenterName, Likes, Dislikes, CreateTime, ArticleID, MemberID string

		Member string
	}
	GooseDbVersion struct {
		ID, VersionID, IsApplied, Tstamp string
	}
	Member struct {
		ID, Name, HashedPassword, Role, IsActive string
	}
	Tag struct {
		ID, Name string
	}
}{
	Article: struct {
		ID, Title, Content, CreateTime, UpdateTime, IsDeleted, WriterID, CategoryID string

		Writer, Category string
	}{
		ID:         "id",
		Title:      "title",
		Content:    "content",
		CreateTime: "create_time",
		UpdateTime: "update_time",
		IsDeleted:  "is_deleted",
		WriterID:   "writer_id",
		CategoryID: "category_id",

		Writer:   "Writer",
		Category: "Category",
	},
	ArticleTag: struct {
		ArticleID, TagID string

		Tag string
	}{
		ArticleID: "article_id",
		TagID:     "tag_id",

		Tag: "Tag",
	},
	Category: struct {
		ID, Name string
	}{
		ID:   "id",
		Name: "name",
	},
	Comment: struct {
		ID, Content, CommenterName, Likes, Dislikes, CreateTime, ArticleID, MemberID string

		Member string
	}{
		ID:            "id",
		Content:       "content",
		CommenterName: "commenter_name",
		Likes:         "likes",
		Dislikes:      "dislikes",
		CreateTime:    "create_time",
		ArticleID:     "article_id",
		MemberID:      "member_id",

		Member: "Member",
	},
	GooseDbVersion: struct {
		ID, VersionID, IsApplied, Tstamp string
	}{
		ID:        "id",
		VersionID: "version_id",
		IsApplied: "is_applied",
		Tstamp:    "tstamp",
	},
	Member: struct {
		ID, Name, HashedPassword, Role, IsActive string
	}{
		ID:             "id",
		Name:           "name",
		HashedPassword: "hashed_password",
		Role:           "role",
		IsActive:       "is_active",
	},
	Tag: struct {
		ID, Name string
	}{
		ID:   "id",
		Name: "name",
	},
}

var Tables = struct {
	Article struct {
		Name, Alias string
	}
	ArticleTag struct {
		Name, Alias string
	}
	Category struct {
		Name, Alias string
	}
	Comment struct {
		Name, Alias string
	}
	GooseDbVersion struct {
		Name, Alias string
	}
	Member struct {
		Name, Alias string
	}
	Tag struct {
		Name, Alias string
	}
}{
	Article: struct {
		Name, Alias string
	}{
		Name:  "articles",
		Alias: "t",
	},
	ArticleTag: struct {
		Name, Alias string
	}{
		Name:  "article_tags",
		Alias: "t",
	},
	Category: struct {
		Name, Alias string
	}{
		Name:  "categories",
		Alias: "t",
	},
	Comment: struct {
		Name, Alias string
	}{
		Name:  "comments",
		Alias: "t",
	},
	GooseDbVersion: struct {
		Name, Alias string
	}{
		Name:  "goose_db_version",
		Alias: "t",
	},
	Member: struct {
		Name, Alias string
	}{
		Name:  "members",
		Alias: "t",
	},
	Tag: struct {
		Name, Alias string
	}{
		Name:  "tags",
		Alias: "t",
	},
}

type Article struct {
	tableName struct{} `pg:"articles,alias:t,discard_unknown_columns"`

	ID         int       `pg:"id,pk"`
	Title      string    `pg:"title,use_zero"`
	Content    string    `pg:"content,use_zero"`
	CreateTime time.Time `pg:"create_time,use_zero"`
	UpdateTime time.Time `pg:"update_time,use_zero"`
	IsDeleted  bool      `pg:"is_deleted,use_zero"`
	WriterID   int       `pg:"writer_id,use_zero"`
	CategoryID *int      `pg:"category_id"`

	Writer   *Member   `pg:"fk:writer_id,rel:has-one"`
	Category *Category `pg:"fk:category_id,rel:has-one"`
}

type ArticleTag struct {
	tableName struct{} `pg:"article_tags,alias:t,discard_unknown_columns"`

	ArticleID int `pg:"article_id,pk"`
	TagID     int `pg:"tag_id,pk"`

	Tag *Tag `pg:"fk:tag_id,rel:has-one"`
}

type Category struct {
	tableName struct{} `pg:"categories,alias:t,discard_unknown_columns"`

	ID   int    `pg:"id,pk"`
	Name string `pg:"name,use_zero"`
}

type Comment struct {
	tableName struct{} `pg:"comments,alias:t,discard_unknown_columns"`

	ID            int       `pg:"id,pk"`
	Content       string    `pg:"content,use_zero"`
	CommenterName *string   `pg:"commenter_name"`
	Likes         int       `pg:"likes,use_zero"`
	Dislikes      int       `pg:"dislikes,use_zero"`
	CreateTime    time.Time `pg:"create_time,use_zero"`
	ArticleID     int       `pg:"article_id,use_zero"`
	MemberID      *int      `pg:"member_id"`

	Member *Member `pg:"fk:member_id,rel:has-one"`
}

type GooseDbVersion struct {
	tableName struct{} `pg:"goose_db_version,alias:t,discard_unknown_columns"`

	ID        int       `pg:"id,pk"`
	VersionID int64     `pg:"version_id,use_zero"`
	IsApplied bool      `pg:"is_applied,use_zero"`
	Tstamp    time.Time `pg:"tstamp,use_zero"`
}

type Member struct {
	tableName struct{} `pg:"members,alias:t,discard_unknown_columns"`

	ID             int    `pg:"id,pk"`
	Name           string `pg:"name,use_zero"`
	HashedPassword string `pg:"hashed_password,use_zero"`
	Role           int    `pg:"role,use_zero"`
	IsActive       bool   `pg:"is_active,use_zero"`
}

type Tag struct {
	tableName struct{} `pg:"tags,alias:t,discard_unknown_columns"`

	ID   int    `pg:"id,pk"`
	Name string `pg:"name,use_zero"`
}
