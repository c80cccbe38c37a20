package store

import (
	"gorm.io/gorm"
)

type BaseQuerier struct {
	QueryFn []func(tx *gorm.DB) *gorm.DB
}

type SortOrder int

const (
	SortByCreatedTime SortOrder = iota
	SortByUpdatedTime
	SortByName
)

type ProjectQueryFilter BaseQuerier

func NewProjectQueryFilter() *ProjectQueryFilter {
	return &ProjectQueryFilter{QueryFn: make([]func(tx *gorm.DB) *gorm.DB, 0)}
}

func (f *ProjectQueryFilter) ByID(ids []string) *ProjectQueryFilter {
	f.QueryFn = append(f.QueryFn, func(tx *gorm.DB) *gorm.DB {
		return tx.Where("id IN ?", ids)
	})
	return f
}

func (f *ProjectQueryFilter) ByOwnerEmail(email string) *ProjectQueryFilter {
	f.QueryFn = append(f.QueryFn, func(tx *gorm.DB) *gorm.DB {
		return tx.Where("owner_email = ?", email)
	})
	return f
}

func (f *ProjectQueryFilter) ByPropertyType(propertyType string) *ProjectQueryFilter {
	f.QueryFn = append(f.QueryFn, func(tx *gorm.DB) *gorm.DB {
		return tx.Where("property_type = ?", propertyType)
	})
	return f
}

// ByNameLike matches the project name case insensitively.
func (f *ProjectQueryFilter) ByNameLike(pattern string) *ProjectQueryFilter {
	f.QueryFn = append(f.QueryFn, func(tx *gorm.DB) *gorm.DB {
		return tx.Where("LOWER(name) LIKE LOWER(?)", "%"+pattern+"%")
	})
	return f
}

type ProjectQueryOptions BaseQuerier

func NewProjectQueryOptions() *ProjectQueryOptions {
	return &ProjectQueryOptions{QueryFn: make([]func(tx *gorm.DB) *gorm.DB, 0)}
}

func (o *ProjectQueryOptions) WithSortOrder(sort SortOrder) *ProjectQueryOptions {
	o.QueryFn = append(o.QueryFn, func(tx *gorm.DB) *gorm.DB {
		switch sort {
		case SortByUpdatedTime:
			return tx.Order("updated_at DESC")
		case SortByName:
			return tx.Order("name")
		default:
			return tx.Order("created_at DESC")
		}
	})
	return o
}

// Limit results
func (o *ProjectQueryOptions) WithLimit(limit int) *ProjectQueryOptions {
	o.QueryFn = append(o.QueryFn, func(tx *gorm.DB) *gorm.DB {
		return tx.Limit(limit)
	})
	return o
}

// Offset results
func (o *ProjectQueryOptions) WithOffset(offset int) *ProjectQueryOptions {
	o.QueryFn = append(o.QueryFn, func(tx *gorm.DB) *gorm.DB {
		return tx.Offset(offset)
	})
	return o
}
