package tracker

import (
	"github.com/julianstephens/skilltrack/internal/constants"
)

// ExportSnapshot renders the whole state as a sorted, pretty-printed JSON document.
func (t *Tracker) ExportSnapshot() ([]byte, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.codec.EncodeDocument(t.state)
}

// ImportSnapshot replaces the whole state with the document's contents. The document
// is fully decoded before anything changes, so a *snapshot.FormatError leaves the
// tracker as it was. The completed-today set is rebuilt from the imported history.
func (t *Tracker) ImportSnapshot(data []byte) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	st, err := t.codec.DecodeDocument(data)
	if err != nil {
		return err
	}

	t.state = st
	t.rebuildCompletedTaskIDs(t.today())
	t.persist(constants.AllKeys...)
	return nil
}
