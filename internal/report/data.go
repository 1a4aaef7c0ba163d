package report

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/akumaldo/project-manager-suite/internal/model"
	"github.com/akumaldo/project-manager-suite/internal/store"
)

// Framework section keys a caller may include in a report.
const (
	SectionCSD      = "csd"
	SectionPVB      = "pvb"
	SectionBMC      = "bmc"
	SectionRICE     = "rice"
	SectionRoadmap  = "roadmap"
	SectionOKR      = "okr"
	SectionPersonas = "personas"
)

var allSections = []string{
	SectionCSD, SectionPVB, SectionBMC, SectionRICE,
	SectionRoadmap, SectionOKR, SectionPersonas,
}

// ObjectiveReport pairs an objective with its key results and overall progress.
type ObjectiveReport struct {
	Objective  model.Objective
	KeyResults []model.KeyResult
	Progress   float64
}

// PersonaReport pairs a persona with its grouped detail entries.
type PersonaReport struct {
	Persona model.Persona
	Details map[string][]model.PersonaDetail
}

// Data is everything the report template renders.
type Data struct {
	Project     model.Project
	GeneratedAt time.Time

	CSD         map[string][]model.CSDItem
	VisionBoard *model.VisionBoard
	Canvas      *model.Canvas
	CanvasItems map[string][]model.CanvasItem
	RICE        []model.RICEItem
	Roadmap     []model.RoadmapItem
	Objectives  []ObjectiveReport
	Personas    []PersonaReport

	HasCSD      bool
	HasPVB      bool
	HasBMC      bool
	HasRICE     bool
	HasRoadmap  bool
	HasOKR      bool
	HasPersonas bool
}

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// Assemble gathers the requested framework sections for one project.
// An empty sections list means every framework.
func (s *Service) Assemble(userID, projectID string, sections []string) (*Data, error) {
	project, err := store.GetOne[model.Project](s.db, store.Filter{"id": projectID, "user_id": userID})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, errors.New("40401:project not found")
		}
		return nil, err
	}

	if len(sections) == 0 {
		sections = allSections
	}
	wanted := make(map[string]bool, len(sections))
	for _, sec := range sections {
		wanted[sec] = true
	}

	data := &Data{Project: *project, GeneratedAt: time.Now()}
	owned := store.Filter{"project_id": projectID, "user_id": userID}

	if wanted[SectionCSD] {
		items, err := store.List[model.CSDItem](s.db, owned, "category", "position")
		if err != nil {
			return nil, err
		}
		data.CSD = make(map[string][]model.CSDItem)
		for _, item := range items {
			data.CSD[item.Category] = append(data.CSD[item.Category], item)
		}
		data.HasCSD = len(items) > 0
	}

	if wanted[SectionPVB] {
		board, err := store.GetOne[model.VisionBoard](s.db, owned)
		if err != nil && !errors.Is(err, store.ErrNotFound) {
			return nil, err
		}
		data.VisionBoard = board
		data.HasPVB = board != nil
	}

	if wanted[SectionBMC] {
		canvas, err := store.GetOne[model.Canvas](s.db, owned)
		if err != nil && !errors.Is(err, store.ErrNotFound) {
			return nil, err
		}
		data.Canvas = canvas
		items, err := store.List[model.CanvasItem](s.db, owned, "block", "position")
		if err != nil {
			return nil, err
		}
		data.CanvasItems = make(map[string][]model.CanvasItem)
		for _, item := range items {
			data.CanvasItems[item.Block] = append(data.CanvasItems[item.Block], item)
		}
		data.HasBMC = canvas != nil || len(items) > 0
	}

	if wanted[SectionRICE] {
		items, err := store.List[model.RICEItem](s.db, owned, "rice_score DESC")
		if err != nil {
			return nil, err
		}
		data.RICE = items
		data.HasRICE = len(items) > 0
	}

	if wanted[SectionRoadmap] {
		items, err := store.List[model.RoadmapItem](s.db, owned, "year", "quarter", "position")
		if err != nil {
			return nil, err
		}
		data.Roadmap = items
		data.HasRoadmap = len(items) > 0
	}

	if wanted[SectionOKR] {
		objectives, err := store.List[model.Objective](s.db, owned, "created_at")
		if err != nil {
			return nil, err
		}
		for _, obj := range objectives {
			krs, err := store.List[model.KeyResult](s.db, store.Filter{"objective_id": obj.ID}, "created_at")
			if err != nil {
				return nil, err
			}
			data.Objectives = append(data.Objectives, ObjectiveReport{
				Objective:  obj,
				KeyResults: krs,
				Progress:   objectiveProgress(krs),
			})
		}
		data.HasOKR = len(objectives) > 0
	}

	if wanted[SectionPersonas] {
		personas, err := store.List[model.Persona](s.db, owned, "created_at")
		if err != nil {
			return nil, err
		}
		for _, p := range personas {
			details, err := store.List[model.PersonaDetail](s.db,
				store.Filter{"persona_id": p.ID, "user_id": userID}, "category", "order_index")
			if err != nil {
				return nil, err
			}
			grouped := make(map[string][]model.PersonaDetail)
			for _, d := range details {
				grouped[d.Category] = append(grouped[d.Category], d)
			}
			data.Personas = append(data.Personas, PersonaReport{Persona: p, Details: grouped})
		}
		data.HasPersonas = len(personas) > 0
	}

	return data, nil
}

// objectiveProgress is the mean of each key result's capped completion percentage.
func objectiveProgress(krs []model.KeyResult) float64 {
	if len(krs) == 0 {
		return 0
	}
	var sum float64
	for _, kr := range krs {
		sum += kr.Progress()
	}
	return sum / float64(len(krs))
}
