package consumer

import (
	"context"
	"encoding/json"
	"go-leave/internal/bootstrap"
	"go-leave/internal/events"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ConsumeLeaveResolved records an audit entry for every leave resolution.
// It never delivers notifications; the audit trail is its only side effect.
func ConsumeLeaveResolved(
	ctx context.Context,
	reader *kafkago.Reader,
	audit bootstrap.AuditLogger,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.leave_resolved")
	log.Info("leave resolved consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("leave resolved consumer stopped")
				return
			}
			log.Error("fetch leave resolved message failed", zap.Error(err))
			continue
		}

		var event events.LeaveResolvedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode leave_resolved event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		audit.Log(ctx, bootstrap.AuditLog{
			Action:  "LEAVE_RESOLVED",
			Message: "Leave request resolved",
			Meta: map[string]any{
				"leave_id":    event.LeaveID,
				"employee_id": event.EmployeeID,
				"status":      event.Status,
				"approver_id": event.ApproverID,
				"request_id":  event.RequestID,
			},
		})

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit leave resolved message failed", zap.Error(err))
			continue
		}

		log.Info("leave resolution audited",
			zap.String("leave_id", event.LeaveID),
			zap.String("status", event.Status),
		)
	}
}
