// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// admin_content.go holds the admin CRUD handlers for courses, news items,
// pages, and projects. Blog posts live in admin.go alongside the shared
// helpers.
package handlers

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"pressfolio/internal/models"
)

// --- Courses ---

// ListCourses serves every non-deleted course for the admin UI.
func (a *Admin) ListCourses(w http.ResponseWriter, r *http.Request) {
	items, err := a.courses.ListAll()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse{Items: items, Page: 1})
}

// GetCourse serves one course by ID, regardless of status.
func (a *Admin) GetCourse(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, err)
		return
	}
	course, err := a.courses.FindByID(id)
	if err != nil {
		writeError(w, err)
		return
	}
	if course == nil {
		writeNotFound(w)
		return
	}
	writeJSON(w, http.StatusOK, course)
}

func decodeCourse(r *http.Request) (*models.Course, error) {
	var course models.Course
	if err := decodeJSON(r, &course); err != nil {
		return nil, err
	}
	if err := sanitizeShared(&course.Content); err != nil {
		return nil, err
	}
	if err := validateBody("description", course.Description); err != nil {
		return nil, err
	}
	if err := validateExcerpt("subtitle", course.Subtitle); err != nil {
		return nil, err
	}
	if course.Level == "" {
		course.Level = models.CourseLevelBeginner
	}
	switch course.Level {
	case models.CourseLevelBeginner, models.CourseLevelIntermediate, models.CourseLevelAdvanced:
	default:
		return nil, &models.ValidationError{Field: "level", Message: "must be one of beginner, intermediate, advanced"}
	}
	if course.PriceCents < 0 {
		return nil, &models.ValidationError{Field: "price_cents", Message: "price cannot be negative"}
	}
	if course.InstructorID == uuid.Nil {
		return nil, &models.ValidationError{Field: "instructor_id", Message: "instructor is required"}
	}
	return &course, nil
}

// CreateCourse saves a new course through the lifecycle manager.
func (a *Admin) CreateCourse(w http.ResponseWriter, r *http.Request) {
	course, err := decodeCourse(r)
	if err != nil {
		writeError(w, err)
		return
	}
	a.lifecycle.Normalize(course, time.Now())
	if err := a.courses.Create(course); err != nil {
		writeError(w, err)
		return
	}
	a.invalidate(r.Context(), "courses")
	writeJSON(w, http.StatusCreated, course)
}

// UpdateCourse replaces a course's editable fields, preserving lifecycle
// state.
func (a *Admin) UpdateCourse(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, err)
		return
	}
	existing, err := a.courses.FindByID(id)
	if err != nil {
		writeError(w, err)
		return
	}
	if existing == nil {
		writeNotFound(w)
		return
	}

	course, err := decodeCourse(r)
	if err != nil {
		writeError(w, err)
		return
	}
	course.ID = existing.ID
	course.Status = existing.Status
	course.PublishedAt = existing.PublishedAt
	course.CreatedAt = existing.CreatedAt
	course.DeletedAt = existing.DeletedAt
	carryScores(&course.Content, &existing.Content)

	a.lifecycle.Normalize(course, time.Now())
	if err := a.courses.Update(course); err != nil {
		writeError(w, err)
		return
	}
	a.invalidate(r.Context(), "courses")
	writeJSON(w, http.StatusOK, course)
}

// TransitionCourse moves a course between statuses.
func (a *Admin) TransitionCourse(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var req transitionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	to, err := models.ParseStatus(req.Status)
	if err != nil {
		writeError(w, err)
		return
	}

	course, err := a.courses.FindByID(id)
	if err != nil {
		writeError(w, err)
		return
	}
	if course == nil {
		writeNotFound(w)
		return
	}
	if err := a.lifecycle.Transition(course, to, time.Now()); err != nil {
		writeError(w, err)
		return
	}
	if err := a.courses.Update(course); err != nil {
		writeError(w, err)
		return
	}
	a.invalidate(r.Context(), "courses")
	writeJSON(w, http.StatusOK, course)
}

// DeleteCourse soft-deletes a course.
func (a *Admin) DeleteCourse(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := a.courses.SoftDelete(id); err != nil {
		writeError(w, err)
		return
	}
	a.invalidate(r.Context(), "courses")
	w.WriteHeader(http.StatusNoContent)
}

// RestoreCourse brings a soft-deleted course back.
func (a *Admin) RestoreCourse(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := a.courses.Restore(id); err != nil {
		writeError(w, err)
		return
	}
	a.invalidate(r.Context(), "courses")
	w.WriteHeader(http.StatusNoContent)
}

// PreviewCourse computes scores and the sharing preview without saving.
func (a *Admin) PreviewCourse(w http.ResponseWriter, r *http.Request) {
	var course models.Course
	if err := decodeJSON(r, &course); err != nil {
		writeError(w, err)
		return
	}
	if err := sanitizeShared(&course.Content); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, a.previewRecord(&course, "courses"))
}

// --- News items ---

// ListNewsItems serves every non-deleted news item for the admin UI.
func (a *Admin) ListNewsItems(w http.ResponseWriter, r *http.Request) {
	items, err := a.news.ListAll()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse{Items: items, Page: 1})
}

// GetNewsItem serves one news item by ID, regardless of status.
func (a *Admin) GetNewsItem(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, err)
		return
	}
	item, err := a.news.FindByID(id)
	if err != nil {
		writeError(w, err)
		return
	}
	if item == nil {
		writeNotFound(w)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func decodeNewsItem(r *http.Request) (*models.NewsItem, error) {
	var item models.NewsItem
	if err := decodeJSON(r, &item); err != nil {
		return nil, err
	}
	if err := sanitizeShared(&item.Content); err != nil {
		return nil, err
	}
	if err := validateBody("body", item.Body); err != nil {
		return nil, err
	}
	priority, err := models.ParseNewsPriority(string(item.Priority))
	if err != nil {
		return nil, err
	}
	item.Priority = priority
	if item.CategoryID == uuid.Nil {
		return nil, &models.ValidationError{Field: "category_id", Message: "category is required"}
	}
	return &item, nil
}

// CreateNewsItem saves a new news item through the lifecycle manager.
func (a *Admin) CreateNewsItem(w http.ResponseWriter, r *http.Request) {
	item, err := decodeNewsItem(r)
	if err != nil {
		writeError(w, err)
		return
	}
	a.lifecycle.Normalize(item, time.Now())
	if err := a.news.Create(item); err != nil {
		writeError(w, err)
		return
	}
	a.invalidate(r.Context(), "news_items")
	writeJSON(w, http.StatusCreated, item)
}

// UpdateNewsItem replaces a news item's editable fields, preserving
// lifecycle state.
func (a *Admin) UpdateNewsItem(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, err)
		return
	}
	existing, err := a.news.FindByID(id)
	if err != nil {
		writeError(w, err)
		return
	}
	if existing == nil {
		writeNotFound(w)
		return
	}

	item, err := decodeNewsItem(r)
	if err != nil {
		writeError(w, err)
		return
	}
	item.ID = existing.ID
	item.Status = existing.Status
	item.PublishedAt = existing.PublishedAt
	item.CreatedAt = existing.CreatedAt
	item.DeletedAt = existing.DeletedAt
	carryScores(&item.Content, &existing.Content)

	a.lifecycle.Normalize(item, time.Now())
	if err := a.news.Update(item); err != nil {
		writeError(w, err)
		return
	}
	a.invalidate(r.Context(), "news_items")
	writeJSON(w, http.StatusOK, item)
}

// TransitionNewsItem moves a news item between statuses.
func (a *Admin) TransitionNewsItem(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var req transitionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	to, err := models.ParseStatus(req.Status)
	if err != nil {
		writeError(w, err)
		return
	}

	item, err := a.news.FindByID(id)
	if err != nil {
		writeError(w, err)
		return
	}
	if item == nil {
		writeNotFound(w)
		return
	}
	if err := a.lifecycle.Transition(item, to, time.Now()); err != nil {
		writeError(w, err)
		return
	}
	if err := a.news.Update(item); err != nil {
		writeError(w, err)
		return
	}
	a.invalidate(r.Context(), "news_items")
	writeJSON(w, http.StatusOK, item)
}

// DeleteNewsItem soft-deletes a news item.
func (a *Admin) DeleteNewsItem(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := a.news.SoftDelete(id); err != nil {
		writeError(w, err)
		return
	}
	a.invalidate(r.Context(), "news_items")
	w.WriteHeader(http.StatusNoContent)
}

// RestoreNewsItem brings a soft-deleted news item back.
func (a *Admin) RestoreNewsItem(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := a.news.Restore(id); err != nil {
		writeError(w, err)
		return
	}
	a.invalidate(r.Context(), "news_items")
	w.WriteHeader(http.StatusNoContent)
}

// FeatureNewsItem toggles the featured flag.
func (a *Admin) FeatureNewsItem(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, err)
		return
	}
	item, err := a.news.FindByID(id)
	if err != nil {
		writeError(w, err)
		return
	}
	if item == nil {
		writeNotFound(w)
		return
	}
	item.Featured = !item.Featured
	if err := a.news.Update(item); err != nil {
		writeError(w, err)
		return
	}
	a.invalidate(r.Context(), "news_items")
	writeJSON(w, http.StatusOK, item)
}

// PreviewNewsItem computes scores and the sharing preview without saving.
func (a *Admin) PreviewNewsItem(w http.ResponseWriter, r *http.Request) {
	var item models.NewsItem
	if err := decodeJSON(r, &item); err != nil {
		writeError(w, err)
		return
	}
	if err := sanitizeShared(&item.Content); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, a.previewRecord(&item, "news"))
}

// --- Pages ---

// ListPages serves every non-deleted page for the admin UI.
func (a *Admin) ListPages(w http.ResponseWriter, r *http.Request) {
	items, err := a.pages.ListAll()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse{Items: items, Page: 1})
}

// GetPage serves one page by ID, regardless of status.
func (a *Admin) GetPage(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, err)
		return
	}
	page, err := a.pages.FindByID(id)
	if err != nil {
		writeError(w, err)
		return
	}
	if page == nil {
		writeNotFound(w)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

func decodePage(r *http.Request) (*models.Page, error) {
	var page models.Page
	if err := decodeJSON(r, &page); err != nil {
		return nil, err
	}
	if err := sanitizeShared(&page.Content); err != nil {
		return nil, err
	}
	if err := validateBody("body", page.Body); err != nil {
		return nil, err
	}
	template, err := models.ParsePageTemplate(string(page.Template))
	if err != nil {
		return nil, err
	}
	page.Template = template
	page.DefaultMenuTitle()
	return &page, nil
}

// CreatePage saves a new page through the lifecycle manager. The store
// rejects a second homepage.
func (a *Admin) CreatePage(w http.ResponseWriter, r *http.Request) {
	page, err := decodePage(r)
	if err != nil {
		writeError(w, err)
		return
	}
	a.lifecycle.Normalize(page, time.Now())
	if err := a.pages.Create(page); err != nil {
		writeError(w, err)
		return
	}
	a.invalidate(r.Context(), "pages")
	writeJSON(w, http.StatusCreated, page)
}

// UpdatePage replaces a page's editable fields, preserving lifecycle state.
func (a *Admin) UpdatePage(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, err)
		return
	}
	existing, err := a.pages.FindByID(id)
	if err != nil {
		writeError(w, err)
		return
	}
	if existing == nil {
		writeNotFound(w)
		return
	}

	page, err := decodePage(r)
	if err != nil {
		writeError(w, err)
		return
	}
	page.ID = existing.ID
	page.Status = existing.Status
	page.PublishedAt = existing.PublishedAt
	page.CreatedAt = existing.CreatedAt
	page.DeletedAt = existing.DeletedAt
	carryScores(&page.Content, &existing.Content)

	a.lifecycle.Normalize(page, time.Now())
	if err := a.pages.Update(page); err != nil {
		writeError(w, err)
		return
	}
	a.invalidate(r.Context(), "pages")
	writeJSON(w, http.StatusOK, page)
}

// TransitionPage moves a page between statuses.
func (a *Admin) TransitionPage(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var req transitionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	to, err := models.ParseStatus(req.Status)
	if err != nil {
		writeError(w, err)
		return
	}

	page, err := a.pages.FindByID(id)
	if err != nil {
		writeError(w, err)
		return
	}
	if page == nil {
		writeNotFound(w)
		return
	}
	if err := a.lifecycle.Transition(page, to, time.Now()); err != nil {
		writeError(w, err)
		return
	}
	if err := a.pages.Update(page); err != nil {
		writeError(w, err)
		return
	}
	a.invalidate(r.Context(), "pages")
	writeJSON(w, http.StatusOK, page)
}

// DeletePage soft-deletes a page.
func (a *Admin) DeletePage(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := a.pages.SoftDelete(id); err != nil {
		writeError(w, err)
		return
	}
	a.invalidate(r.Context(), "pages")
	w.WriteHeader(http.StatusNoContent)
}

// RestorePage brings a soft-deleted page back. Restoring a homepage that
// would collide with a newer one fails on the partial unique index.
func (a *Admin) RestorePage(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := a.pages.Restore(id); err != nil {
		writeError(w, err)
		return
	}
	a.invalidate(r.Context(), "pages")
	w.WriteHeader(http.StatusNoContent)
}

// PreviewPage computes scores and the sharing preview without saving.
func (a *Admin) PreviewPage(w http.ResponseWriter, r *http.Request) {
	var page models.Page
	if err := decodeJSON(r, &page); err != nil {
		writeError(w, err)
		return
	}
	if err := sanitizeShared(&page.Content); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, a.previewRecord(&page, "pages"))
}

// --- Projects ---

// ListProjects serves every non-deleted project for the admin UI.
func (a *Admin) ListProjects(w http.ResponseWriter, r *http.Request) {
	items, err := a.projects.ListAll()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse{Items: items, Page: 1})
}

// GetProject serves one project by ID, regardless of status.
func (a *Admin) GetProject(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, err)
		return
	}
	project, err := a.projects.FindByID(id)
	if err != nil {
		writeError(w, err)
		return
	}
	if project == nil {
		writeNotFound(w)
		return
	}
	writeJSON(w, http.StatusOK, project)
}

func decodeProject(r *http.Request) (*models.Project, error) {
	var project models.Project
	if err := decodeJSON(r, &project); err != nil {
		return nil, err
	}
	if err := sanitizeShared(&project.Content); err != nil {
		return nil, err
	}
	if err := validateBody("description", project.Description); err != nil {
		return nil, err
	}
	if err := validateExcerpt("summary", project.Summary); err != nil {
		return nil, err
	}
	projectType, err := models.ParseProjectType(string(project.Type))
	if err != nil {
		return nil, err
	}
	project.Type = projectType
	difficulty, err := models.ParseDifficulty(string(project.Difficulty))
	if err != nil {
		return nil, err
	}
	project.Difficulty = difficulty
	return &project, nil
}

// CreateProject saves a new project through the lifecycle manager.
func (a *Admin) CreateProject(w http.ResponseWriter, r *http.Request) {
	project, err := decodeProject(r)
	if err != nil {
		writeError(w, err)
		return
	}
	a.lifecycle.Normalize(project, time.Now())
	if err := a.projects.Create(project); err != nil {
		writeError(w, err)
		return
	}
	a.invalidate(r.Context(), "projects")
	writeJSON(w, http.StatusCreated, project)
}

// UpdateProject replaces a project's editable fields, preserving
// lifecycle state.
func (a *Admin) UpdateProject(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, err)
		return
	}
	existing, err := a.projects.FindByID(id)
	if err != nil {
		writeError(w, err)
		return
	}
	if existing == nil {
		writeNotFound(w)
		return
	}

	project, err := decodeProject(r)
	if err != nil {
		writeError(w, err)
		return
	}
	project.ID = existing.ID
	project.Status = existing.Status
	project.PublishedAt = existing.PublishedAt
	project.CreatedAt = existing.CreatedAt
	project.DeletedAt = existing.DeletedAt
	carryScores(&project.Content, &existing.Content)

	a.lifecycle.Normalize(project, time.Now())
	if err := a.projects.Update(project); err != nil {
		writeError(w, err)
		return
	}
	a.invalidate(r.Context(), "projects")
	writeJSON(w, http.StatusOK, project)
}

// TransitionProject moves a project between statuses.
func (a *Admin) TransitionProject(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var req transitionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	to, err := models.ParseStatus(req.Status)
	if err != nil {
		writeError(w, err)
		return
	}

	project, err := a.projects.FindByID(id)
	if err != nil {
		writeError(w, err)
		return
	}
	if project == nil {
		writeNotFound(w)
		return
	}
	if err := a.lifecycle.Transition(project, to, time.Now()); err != nil {
		writeError(w, err)
		return
	}
	if err := a.projects.Update(project); err != nil {
		writeError(w, err)
		return
	}
	a.invalidate(r.Context(), "projects")
	writeJSON(w, http.StatusOK, project)
}

// DeleteProject soft-deletes a project.
func (a *Admin) DeleteProject(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := a.projects.SoftDelete(id); err != nil {
		writeError(w, err)
		return
	}
	a.invalidate(r.Context(), "projects")
	w.WriteHeader(http.StatusNoContent)
}

// RestoreProject brings a soft-deleted project back.
func (a *Admin) RestoreProject(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := a.projects.Restore(id); err != nil {
		writeError(w, err)
		return
	}
	a.invalidate(r.Context(), "projects")
	w.WriteHeader(http.StatusNoContent)
}

// FeatureProject toggles the featured flag.
func (a *Admin) FeatureProject(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, err)
		return
	}
	project, err := a.projects.FindByID(id)
	if err != nil {
		writeError(w, err)
		return
	}
	if project == nil {
		writeNotFound(w)
		return
	}
	project.Featured = !project.Featured
	if err := a.projects.Update(project); err != nil {
		writeError(w, err)
		return
	}
	a.invalidate(r.Context(), "projects")
	writeJSON(w, http.StatusOK, project)
}

// PreviewProject computes scores and the sharing preview without saving.
func (a *Admin) PreviewProject(w http.ResponseWriter, r *http.Request) {
	var project models.Project
	if err := decodeJSON(r, &project); err != nil {
		writeError(w, err)
		return
	}
	if err := sanitizeShared(&project.Content); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, a.previewRecord(&project, "projects"))
}
