package repository

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"taskboard/internal/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&model.User{}, &model.Task{}, &model.Post{}, &model.Comment{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func mustCreate(t *testing.T, db *gorm.DB, value interface{}) {
	t.Helper()
	if err := db.Create(value).Error; err != nil {
		t.Fatalf("create %T: %v", value, err)
	}
}

func TestUserRepository_DeleteCascade(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	users := NewUserRepository(db)

	alice := &model.User{Username: "alice", PasswordHash: "x"}
	bob := &model.User{Username: "bob", PasswordHash: "x"}
	mustCreate(t, db, alice)
	mustCreate(t, db, bob)

	due := time.Now().Add(time.Hour)
	mustCreate(t, db, &model.Task{UserID: alice.ID, Title: "alice task 1", Due: due})
	mustCreate(t, db, &model.Task{UserID: alice.ID, Title: "alice task 2", Due: due})
	bobTask := &model.Task{UserID: bob.ID, Title: "bob task", Due: due}
	mustCreate(t, db, bobTask)

	alicePost := &model.Post{AuthorID: alice.ID, Title: "alice post", Content: "body"}
	bobPost := &model.Post{AuthorID: bob.ID, Title: "bob post", Content: "body"}
	mustCreate(t, db, alicePost)
	mustCreate(t, db, bobPost)

	// comments under alice's post die with the post, even bob's;
	// alice's comment under bob's post dies with alice
	mustCreate(t, db, &model.Comment{PostID: alicePost.ID, AuthorID: alice.ID, Content: "by alice on alice"})
	mustCreate(t, db, &model.Comment{PostID: alicePost.ID, AuthorID: bob.ID, Content: "by bob on alice"})
	mustCreate(t, db, &model.Comment{PostID: bobPost.ID, AuthorID: alice.ID, Content: "by alice on bob"})
	survivor := &model.Comment{PostID: bobPost.ID, AuthorID: bob.ID, Content: "by bob on bob"}
	mustCreate(t, db, survivor)

	assert.NoError(t, users.DeleteCascade(ctx, alice.ID))

	var remainingUsers []model.User
	assert.NoError(t, db.Find(&remainingUsers).Error)
	assert.Len(t, remainingUsers, 1)
	assert.Equal(t, "bob", remainingUsers[0].Username)

	var remainingTasks []model.Task
	assert.NoError(t, db.Find(&remainingTasks).Error)
	assert.Len(t, remainingTasks, 1)
	assert.Equal(t, bobTask.ID, remainingTasks[0].ID)

	var remainingPosts []model.Post
	assert.NoError(t, db.Find(&remainingPosts).Error)
	assert.Len(t, remainingPosts, 1)
	assert.Equal(t, bobPost.ID, remainingPosts[0].ID)

	// the comments-under-own-posts delete must run while alice's posts still
	// exist, otherwise bob's comment on alice's post would be orphaned and
	// show up here
	var remainingComments []model.Comment
	assert.NoError(t, db.Find(&remainingComments).Error)
	assert.Len(t, remainingComments, 1)
	assert.Equal(t, survivor.ID, remainingComments[0].ID)
	assert.Equal(t, "by bob on bob", remainingComments[0].Content)
}

func TestUserRepository_DeleteCascade_LeavesOthersUntouched(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	users := NewUserRepository(db)

	lone := &model.User{Username: "lone", PasswordHash: "x"}
	mustCreate(t, db, lone)
	mustCreate(t, db, &model.Task{UserID: lone.ID, Title: "keep me", Due: time.Now()})

	// deleting a user with no rows of their own is a no-op for everyone else
	ghost := &model.User{Username: "ghost", PasswordHash: "x"}
	mustCreate(t, db, ghost)
	assert.NoError(t, users.DeleteCascade(ctx, ghost.ID))

	var taskCount int64
	assert.NoError(t, db.Model(&model.Task{}).Count(&taskCount).Error)
	assert.Equal(t, int64(1), taskCount)

	_, err := users.FindByUsername(ctx, "lone")
	assert.NoError(t, err)
}
