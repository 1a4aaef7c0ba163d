package service

import (
	"fmt"

	"github.com/akumaldo/project-manager-suite/internal/model"
	"github.com/akumaldo/project-manager-suite/internal/store"
	"gorm.io/gorm"
)

// itemTable maps a link item type onto its backing table and the fields used
// when rendering a snippet. The registry is closed: unknown types are
// rejected on write and skipped on read.
type itemTable struct {
	table        string
	contentField string
	nameField    string
}

var itemTypeRegistry = map[string]itemTable{
	"csd_item":       {table: "csd_items", contentField: "text"},
	"roadmap_item":   {table: "roadmap_items", contentField: "description", nameField: "name"},
	"persona_detail": {table: "persona_details", contentField: "content"},
	"okr_key_result": {table: "key_results", contentField: "description", nameField: "title"},
	"objective":      {table: "objectives", contentField: "description", nameField: "title"},
	"rice_item":      {table: "rice_items", contentField: "description", nameField: "name"},
}

func validItemType(t string) bool {
	_, ok := itemTypeRegistry[t]
	return ok
}

// ItemSnippet is a lightweight display view of a linked item.
type ItemSnippet struct {
	ID      string `json:"id"`
	Type    string `json:"type"`
	Content string `json:"content"`
	Name    string `json:"name,omitempty"`
}

type LinkService struct {
	db *gorm.DB
}

func NewLinkService(db *gorm.DB) *LinkService {
	return &LinkService{db: db}
}

func (s *LinkService) Create(userID string, link *model.FrameworkLink) (*model.FrameworkLink, error) {
	if _, err := ensureProject(s.db, link.ProjectID, userID); err != nil {
		return nil, err
	}
	if !validItemType(link.SourceItemType) {
		return nil, fmt.Errorf("40003:unsupported item type %q", link.SourceItemType)
	}
	if !validItemType(link.TargetItemType) {
		return nil, fmt.Errorf("40003:unsupported item type %q", link.TargetItemType)
	}
	link.UserID = userID
	if err := store.Insert(s.db, link); err != nil {
		return nil, err
	}
	return link, nil
}

func (s *LinkService) Delete(userID, linkID string) error {
	filter := store.Filter{"id": linkID, "user_id": userID}
	if _, err := store.GetOne[model.FrameworkLink](s.db, filter); err != nil {
		return guarded(err, "link")
	}
	return store.Delete[model.FrameworkLink](s.db, filter)
}

// GetItem resolves one item by type+id through the registry. Unlike snippet
// resolution this is strict: unknown types and missing rows are errors.
func (s *LinkService) GetItem(userID, itemType, itemID string) (*ItemSnippet, error) {
	if !validItemType(itemType) {
		return nil, fmt.Errorf("40003:unsupported item type %q", itemType)
	}
	snippet := s.snippet(userID, itemType, itemID, false)
	if snippet == nil {
		return nil, errNotFound("item")
	}
	return snippet, nil
}

// LinkedItems returns snippets of everything linked to the given item, in
// either direction. Snippet resolution is best-effort: a dangling endpoint
// (deleted row) or a backing error yields no entry rather than failing the
// whole listing.
func (s *LinkService) LinkedItems(userID, itemType, itemID string) ([]ItemSnippet, error) {
	if !validItemType(itemType) {
		return nil, fmt.Errorf("40003:unsupported item type %q", itemType)
	}
	outgoing, err := store.List[model.FrameworkLink](s.db, store.Filter{
		"user_id":          userID,
		"source_item_id":   itemID,
		"source_item_type": itemType,
	})
	if err != nil {
		return nil, err
	}
	incoming, err := store.List[model.FrameworkLink](s.db, store.Filter{
		"user_id":          userID,
		"target_item_id":   itemID,
		"target_item_type": itemType,
	})
	if err != nil {
		return nil, err
	}

	items := make([]ItemSnippet, 0, len(outgoing)+len(incoming))
	for _, link := range outgoing {
		if snippet := s.snippet(userID, link.TargetItemType, link.TargetItemID, true); snippet != nil {
			items = append(items, *snippet)
		}
	}
	for _, link := range incoming {
		if snippet := s.snippet(userID, link.SourceItemType, link.SourceItemID, true); snippet != nil {
			items = append(items, *snippet)
		}
	}
	return items, nil
}

// snippet fetches the display fields for one endpoint, scoped to the caller's
// rows. Returns nil on any failure or when the row is simply absent.
func (s *LinkService) snippet(userID, itemType, itemID string, truncate bool) *ItemSnippet {
	mapping, ok := itemTypeRegistry[itemType]
	if !ok {
		return nil
	}
	columns := []string{"id", mapping.contentField}
	if mapping.nameField != "" {
		columns = append(columns, mapping.nameField)
	}
	query := s.db.Table(mapping.table).Select(columns).Where("id = ?", itemID)
	if mapping.table == "key_results" {
		// key_results carry no owner column; ownership flows through the objective
		query = query.Where("objective_id IN (SELECT id FROM objectives WHERE user_id = ?)", userID)
	} else {
		query = query.Where("user_id = ?", userID)
	}
	row := map[string]interface{}{}
	err := query.Take(&row).Error
	if err != nil || len(row) == 0 {
		return nil
	}
	content, _ := row[mapping.contentField].(string)
	if truncate && len([]rune(content)) > 100 {
		content = string([]rune(content)[:97]) + "..."
	}
	name := ""
	if mapping.nameField != "" {
		name, _ = row[mapping.nameField].(string)
	}
	return &ItemSnippet{ID: itemID, Type: itemType, Content: content, Name: name}
}
