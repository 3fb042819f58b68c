package overture

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"composer/internal/domain/model"
)

func newAuditLog(scope string, customerID uuid.UUID, action model.AuditAction, detail map[string]string, now time.Time) (model.AuditLog, error) {
	log := model.AuditLog{
		ScopeID:    scope,
		CustomerID: customerID,
		Action:     action,
		CreatedAt:  now,
	}
	if len(detail) > 0 {
		b, err := json.Marshal(detail)
		if err != nil {
			return model.AuditLog{}, err
		}
		log.DetailJSON = string(b)
	}
	return log, nil
}

// audit は tx と同じトランザクションで監査ログを残す
func (b *Backend) audit(tx *gorm.DB, scope string, customerID uuid.UUID, action model.AuditAction, detail map[string]string) error {
	log, err := newAuditLog(scope, customerID, action, detail, b.clock.Now())
	if err != nil {
		return err
	}
	return tx.Create(&log).Error
}
