package postgres

import (
	"testing"

	"promptpush/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/utils/tests"
)

// The eligibility predicate lives entirely in SQL, so build the statement in
// dry-run mode and check the generated clause instead of mocking rows.
func TestEligibleMemberScope_ExcludesSenderAndOptOuts(t *testing.T) {
	db, err := gorm.Open(tests.DummyDialector{}, &gorm.Config{DryRun: true})
	require.NoError(t, err)

	roomID := uuid.New()
	senderID := uuid.New()

	var members []*model.RoomMemberModel
	stmt := db.Model(&model.RoomMemberModel{}).
		Scopes(eligibleMemberScope(roomID, senderID)).
		Find(&members).Statement

	sql := stmt.SQL.String()
	assert.Contains(t, sql, "room_id = ?")
	assert.Contains(t, sql, "user_id <> ?")
	assert.Contains(t, sql, "message_notifs_enabled = ?")
	assert.Equal(t, []interface{}{roomID, senderID, true}, stmt.Vars)
}
