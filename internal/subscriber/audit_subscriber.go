package subscriber

import (
	"github.com/venturebase/backoffice/internal/eventbus"
	"github.com/venturebase/backoffice/internal/utils"
	"k8s.io/klog/v2"
)

// AuditSubscriber writes an audit trail of back-office mutations and raises
// an error-level log when a mutation left files it could not delete, so
// operators can clean up or retry.
type AuditSubscriber struct{}

func NewAuditSubscriber() *AuditSubscriber {
	return &AuditSubscriber{}
}

func (s *AuditSubscriber) Register(bus *eventbus.Bus) {
	if bus == nil {
		return
	}
	bus.Subscribe(eventbus.ContentEventCreated, s.handle)
	bus.Subscribe(eventbus.ContentEventUpdated, s.handle)
	bus.Subscribe(eventbus.ContentEventDeleted, s.handle)
}

func (s *AuditSubscriber) handle(event eventbus.ContentEvent) error {
	klog.V(6).Infof("콘텐츠 변경: type=%s, collection=%s, id=%d", event.Type, event.Collection, event.RecordID)
	if len(event.FailedDeletes) > 0 {
		klog.Errorf("파일 삭제 실패 잔여분: collection=%s, id=%d, paths=%s",
			event.Collection, event.RecordID, utils.ToJSON(event.FailedDeletes))
	}
	return nil
}
