package neo4j

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/hallgrim/jobsift/internal/domain"
	"github.com/hallgrim/jobsift/internal/domain/job"

	pkgneo4j "github.com/hallgrim/jobsift/pkg/neo4j"
)

// Ensure JobRepository implements job.Repository
var _ job.Repository = (*JobRepository)(nil)

// JobRepository implements job.Repository with Neo4j
type JobRepository struct {
	client *pkgneo4j.Client
}

// NewJobRepository creates a JobRepository with a Neo4j client
func NewJobRepository(client *pkgneo4j.Client) *JobRepository {
	return &JobRepository{
		client: client,
	}
}

// UpsertJobs will merge and set job data in Neo4j
func (r *JobRepository) UpsertJobs(ctx context.Context, jobs []domain.Job) error {
	if len(jobs) == 0 {
		return nil
	}

	session := r.client.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close(ctx)

	query := `
		UNWIND $jobs AS job
		MERGE (j:Job {source: job.source, externalId: job.externalId})
		SET j.id = job.id,
		    j.title = job.title,
		    j.location = job.location,
		    j.remote = job.remote,
		    j.url = job.url,
		    j.directUrl = job.directUrl,
		    j.postedAt = job.postedAt,
		    j.description = job.description,
		    j.salaryMin = job.salaryMin,
		    j.salaryMax = job.salaryMax,
		    j.currency = job.currency,
		    j.salaryInterval = job.salaryInterval,
		    j.fetchedAt = datetime({epochMillis: job.fetchedAt})
		WITH j, job
		MERGE (c:Company {id: job.company.id})
		SET c.name = job.company.name
		MERGE (j)-[:POSTED_BY]->(c)
	`

	jobsData := make([]map[string]any, 0, len(jobs))
	for _, j := range jobs {
		data := map[string]any{
			"id":             j.ID.String(),
			"title":          j.Title,
			"company":        map[string]any{"id": j.Company.ID, "name": j.Company.Name},
			"location":       j.Location,
			"remote":         j.Remote,
			"url":            j.URL,
			"directUrl":      j.DirectURL,
			"source":         j.Source,
			"externalId":     j.ExternalID,
			"description":    j.Description,
			"currency":       j.Currency,
			"salaryInterval": j.SalaryInterval,
			"fetchedAt":      j.FetchedAt.UnixMilli(),
		}

		// Unknown posting dates and salary bounds stay null in the graph.
		data["postedAt"] = nil
		if !j.PostedAt.IsZero() {
			data["postedAt"] = j.PostedAt.UTC()
		}
		data["salaryMin"] = nil
		if j.SalaryMin != nil {
			data["salaryMin"] = *j.SalaryMin
		}
		data["salaryMax"] = nil
		if j.SalaryMax != nil {
			data["salaryMax"] = *j.SalaryMax
		}

		jobsData = append(jobsData, data)
	}

	_, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		result, err := tx.Run(ctx, query, map[string]any{"jobs": jobsData})
		if err != nil {
			return nil, err
		}
		return result.Consume(ctx)
	})

	return err
}

// FindByIDs loads jobs by ID
func (r *JobRepository) FindByIDs(ctx context.Context, ids []domain.JobID) ([]domain.Job, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	session := r.client.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close(ctx)

	idStrings := make([]string, 0, len(ids))
	for _, id := range ids {
		idStrings = append(idStrings, id.String())
	}

	query := `
		MATCH (j:Job)
		WHERE j.id IN $ids
		OPTIONAL MATCH (j)-[:POSTED_BY]->(c:Company)
		RETURN j, c
	`

	result, err := session.ExecuteRead(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		records, err := tx.Run(ctx, query, map[string]any{"ids": idStrings})
		if err != nil {
			return nil, err
		}

		jobs := make([]domain.Job, 0)
		for records.Next(ctx) {
			record := records.Record()

			jobVal, ok := record.Get("j")
			if !ok {
				continue
			}
			jobNode, ok := jobVal.(neo4j.Node)
			if !ok {
				continue
			}

			j, err := jobFromProps(jobNode.Props)
			if err != nil {
				continue
			}

			if companyVal, ok := record.Get("c"); ok {
				if companyNode, ok := companyVal.(neo4j.Node); ok {
					j.Company = domain.CompanyRef{
						ID:   stringProp(companyNode.Props, "id"),
						Name: stringProp(companyNode.Props, "name"),
					}
				}
			}

			jobs = append(jobs, j)
		}

		return jobs, records.Err()
	})
	if err != nil {
		return nil, err
	}

	return result.([]domain.Job), nil
}

func jobFromProps(props map[string]any) (domain.Job, error) {
	jobID, err := uuid.Parse(stringProp(props, "id"))
	if err != nil {
		return domain.Job{}, err
	}

	j := domain.Job{
		ID:             jobID,
		Title:          stringProp(props, "title"),
		Location:       stringProp(props, "location"),
		Remote:         boolProp(props, "remote"),
		URL:            stringProp(props, "url"),
		DirectURL:      stringProp(props, "directUrl"),
		Source:         stringProp(props, "source"),
		ExternalID:     stringProp(props, "externalId"),
		Description:    stringProp(props, "description"),
		Currency:       stringProp(props, "currency"),
		SalaryInterval: stringProp(props, "salaryInterval"),
		SalaryMin:      floatPropPtr(props, "salaryMin"),
		SalaryMax:      floatPropPtr(props, "salaryMax"),
		PostedAt:       timeProp(props, "postedAt"),
		FetchedAt:      timeProp(props, "fetchedAt"),
	}

	return j, nil
}

func stringProp(props map[string]any, key string) string {
	if v, ok := props[key].(string); ok {
		return v
	}
	return ""
}

func boolProp(props map[string]any, key string) bool {
	if v, ok := props[key].(bool); ok {
		return v
	}
	return false
}

func floatPropPtr(props map[string]any, key string) *float64 {
	if v, ok := props[key].(float64); ok {
		return &v
	}
	return nil
}

func timeProp(props map[string]any, key string) time.Time {
	switch v := props[key].(type) {
	case time.Time:
		return v
	case neo4j.LocalDateTime:
		return v.Time()
	default:
		return time.Time{}
	}
}
