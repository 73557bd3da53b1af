package repo

import (
	"context"
	"database/sql"
	"fmt"

	"outreach/internal/domain"
	"outreach/internal/infra"
	"outreach/internal/sqlinline"
)

// CourseRepository implements domain.CourseRepository.
type CourseRepository struct {
	sql infra.SQLExecutor
}

// NewCourseRepository creates a new course repo.
func NewCourseRepository(exec infra.SQLExecutor) *CourseRepository {
	return &CourseRepository{sql: exec}
}

func (r *CourseRepository) Create(ctx context.Context, c *domain.Course) error {
	row := r.sql.QueryRow(ctx, sqlinline.QInsertCourse,
		c.Title, c.Instructor, c.Duration, c.Level, c.Price, c.Rating, c.Students, c.Category, c.Image)
	if err := row.Scan(&c.ID); err != nil {
		return fmt.Errorf("insert course: %w", err)
	}
	return nil
}

func (r *CourseRepository) List(ctx context.Context) ([]domain.Course, error) {
	rows, err := r.sql.Query(ctx, sqlinline.QListCourses)
	if err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	defer rows.Close()

	items := []domain.Course{}
	for rows.Next() {
		var c domain.Course
		var title, instructor, duration, level, price, category, image sql.NullString
		var rating sql.NullFloat64
		var students sql.NullInt64
		if err := rows.Scan(&c.ID, &title, &instructor, &duration, &level, &price, &rating, &students, &category, &image); err != nil {
			return nil, fmt.Errorf("scan course: %w", err)
		}
		c.Title = title.String
		c.Instructor = instructor.String
		c.Duration = duration.String
		c.Level = level.String
		c.Price = price.String
		c.Rating = rating.Float64
		c.Students = students.Int64
		c.Category = category.String
		c.Image = image.String
		items = append(items, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	return items, nil
}
