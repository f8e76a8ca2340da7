package pets

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/codeodor/plasm"
	custom_error "github.com/codeodor/plasm/pkg/errors"
	"github.com/codeodor/plasm/pkg/models"
)

type PetsRepository interface {
	ListPets(opts ListOptions) ([]models.Pet, error)
	GetPet(id int) (*models.Pet, error)
	Stats() (*models.PetStats, error)
	Species() ([]string, error)
	CreatePet(req models.CreatePetRequest) (*models.Pet, error)
}

type PetHandler struct {
	Repository PetsRepository
}

func NewPetHandler(repo PetsRepository) *PetHandler {
	return &PetHandler{Repository: repo}
}

func (h *PetHandler) RegisterRoutes(router *gin.Engine) {
	router.GET("/pets", h.ListPets)
	router.GET("/pets/stats", h.GetStats)
	router.GET("/pets/species", h.GetSpecies)
	router.GET("/pets/:id", h.GetPet)
	router.POST("/pets", h.CreatePet)
}

func (h *PetHandler) ListPets(c *gin.Context) {
	opts, err := parseListOptions(c)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters", "details": err.Error()})
		return
	}

	pets, err := h.Repository.ListPets(opts)
	if err != nil {
		abortWithQueryError(c, "Could not list pets", err)
		return
	}

	c.JSON(http.StatusOK, pets)
}

func (h *PetHandler) GetPet(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid pet id"})
		return
	}

	pet, err := h.Repository.GetPet(id)
	if err != nil {
		abortWithQueryError(c, "Could not fetch pet", err)
		return
	}
	if pet == nil {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Pet not found"})
		return
	}

	c.JSON(http.StatusOK, pet)
}

func (h *PetHandler) GetStats(c *gin.Context) {
	stats, err := h.Repository.Stats()
	if err != nil {
		abortWithQueryError(c, "Could not compute stats", err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

func (h *PetHandler) GetSpecies(c *gin.Context) {
	species, err := h.Repository.Species()
	if err != nil {
		abortWithQueryError(c, "Could not list species", err)
		return
	}

	c.JSON(http.StatusOK, species)
}

func (h *PetHandler) CreatePet(c *gin.Context) {
	var req models.CreatePetRequest
	if err := c.BindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	pet, err := h.Repository.CreatePet(req)
	var uniqueErr *custom_error.UniqueViolationError
	if errors.As(err, &uniqueErr) {
		c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": "Could not insert pet, tag not unique", "details": err.Error()})
		return
	} else if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Could not insert pet"})
		return
	}

	c.JSON(http.StatusCreated, pet)
}

// sortableColumns guards ordering so callers cannot order by arbitrary input.
var sortableColumns = map[string]bool{
	"name":       true,
	"age":        true,
	"created_at": true,
}

func parseListOptions(c *gin.Context) (ListOptions, error) {
	opts := ListOptions{
		Match:         plasm.Filters{},
		Exclude:       plasm.Filters{},
		CreatedAfter:  c.Query("created_after"),
		CreatedBefore: c.Query("created_before"),
	}

	if name := c.Query("name"); name != "" {
		opts.Match["name"] = plasm.Scalar(name)
	}
	if tag := c.Query("tag"); tag != "" {
		opts.Match["tag"] = plasm.Scalar(tag)
	}
	if species := queryValues(c, "species"); len(species) > 0 {
		opts.Match["species"] = filterValue(species)
	}
	if excluded := queryValues(c, "exclude_species"); len(excluded) > 0 {
		opts.Exclude["species"] = plasm.Set(asAny(excluded)...)
	}

	if ages := queryValues(c, "age"); len(ages) > 0 {
		parsed := make([]interface{}, len(ages))
		for i, raw := range ages {
			age, err := strconv.Atoi(raw)
			if err != nil {
				return ListOptions{}, err
			}
			parsed[i] = age
		}
		if len(parsed) == 1 {
			opts.Match["age"] = plasm.Scalar(parsed[0])
		} else {
			opts.Match["age"] = plasm.Set(parsed...)
		}
	}

	if sortBy := c.Query("sort"); sortBy != "" {
		if !sortableColumns[sortBy] {
			return ListOptions{}, errors.New("cannot sort by " + sortBy)
		}
		opts.SortBy = sortBy
		opts.SortDesc = c.Query("dir") == "desc"
	}

	if limit := c.Query("limit"); limit != "" {
		parsed, err := strconv.ParseUint(limit, 10, 32)
		if err != nil {
			return ListOptions{}, err
		}
		opts.Limit = uint(parsed)
	}
	if sample := c.Query("sample"); sample != "" {
		parsed, err := strconv.ParseUint(sample, 10, 32)
		if err != nil {
			return ListOptions{}, err
		}
		opts.Sample = uint(parsed)
	}

	return opts, nil
}

// queryValues reads a parameter that may repeat or carry comma-separated
// values, e.g. species=cat&species=dog or species=cat,dog.
func queryValues(c *gin.Context, key string) []string {
	var values []string
	for _, raw := range c.QueryArray(key) {
		for _, v := range strings.Split(raw, ",") {
			if v = strings.TrimSpace(v); v != "" {
				values = append(values, v)
			}
		}
	}
	return values
}

func filterValue(values []string) plasm.Value {
	if len(values) == 1 {
		return plasm.Scalar(values[0])
	}
	return plasm.Set(asAny(values)...)
}

func asAny(values []string) []interface{} {
	result := make([]interface{}, len(values))
	for i, v := range values {
		result[i] = v
	}
	return result
}

func abortWithQueryError(c *gin.Context, message string, err error) {
	var unknownField *custom_error.UnknownFieldError
	var parseErr *custom_error.TimestampParseError
	var dialectErr *custom_error.UnsupportedDialectError

	switch {
	case errors.As(err, &unknownField), errors.As(err, &parseErr), errors.As(err, &dialectErr):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": message, "details": err.Error()})
	default:
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": message, "details": err.Error()})
	}
}
