package service

import (
	"github.com/venturebase/backoffice/internal/eventbus"
	"github.com/venturebase/backoffice/internal/pkg/filestore"
	"k8s.io/klog/v2"
)

// maxUpdateRetries bounds the optimistic-concurrency retry loop when two
// requests modify the same record at once.
const maxUpdateRetries = 3

// ContentFields is the editable field subset shared by news and program
// requests. Nil pointers mean the field was absent from the form, which
// matters for partial updates.
type ContentFields struct {
	Category *string
	Title    *string
	Content  *string
	Shortcut *string
	Link     *string
	Visible  *bool
	// KeepImages lists the stored image paths the client retains during an
	// update; nil when the keepImages field was not supplied at all.
	KeepImages []string
}

func strVal(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// applyAndPublish promotes staged files, carries out deferred deletions and
// announces the mutation. Runs only after the row commit; failures here are
// logged, never surfaced to the client.
func applyAndPublish(bus *eventbus.Bus, batch *filestore.Batch, eventType eventbus.ContentEventType, collection string, id uint) {
	failed, err := batch.Apply()
	if err != nil {
		klog.Errorf("파일 승격 실패: collection=%s, id=%d, error=%v", collection, id, err)
	}
	if bus == nil {
		return
	}
	event := eventbus.ContentEvent{
		Type:          eventType,
		Collection:    collection,
		RecordID:      id,
		FailedDeletes: failed,
	}
	if perr := bus.Publish(event); perr != nil {
		klog.V(6).Infof("이벤트 발행 실패: collection=%s, id=%d, error=%v", collection, id, perr)
	}
}
