package pets

import (
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"github.com/lib/pq"

	"github.com/codeodor/plasm"
	"github.com/codeodor/plasm/internal/repository"
	custom_error "github.com/codeodor/plasm/pkg/errors"
	"github.com/codeodor/plasm/pkg/models"
)

var petsRelation = plasm.NewRelation("pets", "id")

var petColumns = []interface{}{"id", "name", "species", "age", "tag", "adopted_at", "created_at"}

// ListOptions is the catalog listing contract: exact matching, exclusion,
// creation-time range, ordering and sampling, all composed through plasm.
type ListOptions struct {
	Match         plasm.Filters
	Exclude       plasm.Filters
	CreatedAfter  string
	CreatedBefore string
	SortBy        string
	SortDesc      bool
	Limit         uint
	Sample        uint
}

type PetRepository struct {
	Repository *repository.Repository
}

func NewPetRepository(r *repository.Repository) *PetRepository {
	return &PetRepository{Repository: r}
}

func (r *PetRepository) base() *goqu.SelectDataset {
	return r.Repository.Goqu.From(petsRelation.Name()).Select(petColumns...)
}

func (r *PetRepository) ListPets(opts ListOptions) ([]models.Pet, error) {
	var err error

	ds := plasm.MatchAll(r.base(), opts.Match)
	ds = plasm.MatchNone(ds, opts.Exclude)

	if opts.CreatedAfter != "" {
		if ds, err = plasm.AtOrAfter(ds, "created_at", opts.CreatedAfter); err != nil {
			return nil, err
		}
	}
	if opts.CreatedBefore != "" {
		if ds, err = plasm.Before(ds, "created_at", opts.CreatedBefore); err != nil {
			return nil, err
		}
	}

	switch {
	case opts.Sample > 0:
		if ds, err = plasm.Sample(ds, opts.Sample); err != nil {
			return nil, err
		}
	case opts.SortBy != "":
		limit := opts.Limit
		if limit == 0 {
			limit = defaultPageSize
		}
		if opts.SortDesc {
			ds, err = plasm.Descending(ds, opts.SortBy, limit)
		} else {
			ds, err = plasm.Ascending(ds, opts.SortBy, limit)
		}
		if err != nil {
			return nil, err
		}
	case opts.Limit > 0:
		ds = ds.Limit(opts.Limit)
	}

	var result = []models.Pet{}
	if err := ds.Executor().ScanStructs(&result); err != nil {
		return nil, wrapQueryError("unable to list pets", err)
	}

	return result, nil
}

const defaultPageSize = 50

func (r *PetRepository) GetPet(id int) (*models.Pet, error) {
	ds, err := petsRelation.FindByKey(r.base(), id)
	if err != nil {
		return nil, err
	}

	var pet models.Pet
	found, err := ds.Executor().ScanStruct(&pet)
	if err != nil {
		return nil, wrapQueryError("unable to fetch pet", err)
	}
	if !found {
		return nil, nil
	}

	return &pet, nil
}

func (r *PetRepository) GetPets(ids []int) ([]models.Pet, error) {
	keys := make([]interface{}, len(ids))
	for i, id := range ids {
		keys[i] = id
	}

	ds, err := petsRelation.FindByKeys(r.base(), keys...)
	if err != nil {
		return nil, err
	}

	var result = []models.Pet{}
	if err := ds.Executor().ScanStructs(&result); err != nil {
		return nil, wrapQueryError("unable to fetch pets", err)
	}

	return result, nil
}

func (r *PetRepository) Stats() (*models.PetStats, error) {
	var stats models.PetStats
	base := r.Repository.Goqu.From(petsRelation.Name())

	if _, err := plasm.CountRows(base).Executor().ScanVal(&stats.Total); err != nil {
		return nil, wrapQueryError("unable to count pets", err)
	}

	species, err := plasm.CountDistinct(base, "species")
	if err != nil {
		return nil, err
	}
	if _, err := species.Executor().ScanVal(&stats.SpeciesCount); err != nil {
		return nil, wrapQueryError("unable to count species", err)
	}

	if stats.Total == 0 {
		return &stats, nil
	}

	avgAge, err := plasm.Avg(base, "age")
	if err != nil {
		return nil, err
	}
	if _, err := avgAge.Executor().ScanVal(&stats.AverageAge); err != nil {
		return nil, wrapQueryError("unable to average ages", err)
	}

	// Aggregated timestamps come back without column type information on
	// some drivers, so they are scanned as text and parsed explicitly.
	oldest, err := plasm.Min(base, "created_at")
	if err != nil {
		return nil, err
	}
	var oldestRaw string
	if _, err := oldest.Executor().ScanVal(&oldestRaw); err != nil {
		return nil, wrapQueryError("unable to find oldest entry", err)
	}
	if stats.OldestEntry, err = plasm.ParseTimestamp(oldestRaw); err != nil {
		return nil, err
	}

	newest, err := plasm.Max(base, "created_at")
	if err != nil {
		return nil, err
	}
	var newestRaw string
	if _, err := newest.Executor().ScanVal(&newestRaw); err != nil {
		return nil, wrapQueryError("unable to find newest entry", err)
	}
	if stats.NewestEntry, err = plasm.ParseTimestamp(newestRaw); err != nil {
		return nil, err
	}

	return &stats, nil
}

func (r *PetRepository) Species() ([]string, error) {
	ds, err := plasm.DistinctBy(r.Repository.Goqu.From(petsRelation.Name()), "species")
	if err != nil {
		return nil, err
	}

	var species = []string{}
	if err := ds.Order(goqu.C("species").Asc()).Executor().ScanVals(&species); err != nil {
		return nil, wrapQueryError("unable to list species", err)
	}

	return species, nil
}

func (r *PetRepository) CreatePet(req models.CreatePetRequest) (*models.Pet, error) {
	record := goqu.Record{
		"name":    req.Name,
		"species": req.Species,
		"age":     req.Age,
		"tag":     req.Tag,
	}
	pet := models.Pet{
		Name:    req.Name,
		Species: req.Species,
		Age:     req.Age,
		Tag:     req.Tag,
	}

	insert := r.Repository.Goqu.Insert(petsRelation.Name()).Rows(record)

	// lib/pq cannot report LastInsertId, so the id comes back via RETURNING
	// on postgres and via the driver everywhere else.
	if r.Repository.Dialect() == "postgres" {
		if _, err := insert.Returning("id").Executor().ScanVal(&pet.ID); err != nil {
			return nil, wrapQueryError("failed to insert pet record", err)
		}
		return &pet, nil
	}

	result, err := insert.Executor().Exec()
	if err != nil {
		return nil, wrapQueryError("failed to insert pet record", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to read inserted pet id: %w", err)
	}
	pet.ID = int(id)

	return &pet, nil
}

// Seed inserts a batch of pets in one transaction.
func (r *PetRepository) Seed(seed []models.Pet) error {
	return r.Repository.WithTransaction(func(tx *goqu.TxDatabase) error {
		for _, pet := range seed {
			record := goqu.Record{
				"name":       pet.Name,
				"species":    pet.Species,
				"age":        pet.Age,
				"tag":        pet.Tag,
				"created_at": pet.CreatedAt,
			}
			if pet.AdoptedAt != nil {
				record["adopted_at"] = *pet.AdoptedAt
			}
			if _, err := tx.Insert(petsRelation.Name()).Rows(record).Executor().Exec(); err != nil {
				return fmt.Errorf("failed to seed pet %q: %w", pet.Tag, err)
			}
		}
		return nil
	})
}

func wrapQueryError(message string, err error) error {
	if pqErr, ok := err.(*pq.Error); ok {
		return custom_error.WrapDBError(message, string(pqErr.Code))
	}
	return fmt.Errorf("%s: %w", message, err)
}
