package apicheck

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

const expectedName = "Erik Sjaastad"

func checkRoot(ctx context.Context, c *Checker) error {
	body, err := c.getObject(ctx, "/")
	if err != nil {
		return err
	}
	return requireKeys(body, "message")
}

func checkProfile(ctx context.Context, c *Checker) error {
	profile, err := c.getObject(ctx, "/profile")
	if err != nil {
		return err
	}
	if err := requireKeys(profile, "name", "title", "tagline", "summary", "contact", "location"); err != nil {
		return err
	}
	var errs []error
	for _, field := range []string{"name", "title", "tagline", "summary", "location"} {
		if _, ok := profile[field].(string); !ok {
			errs = append(errs, fmt.Errorf("field %s is not a string", field))
		}
	}
	contact, ok := profile["contact"].(map[string]any)
	if !ok {
		errs = append(errs, errors.New("field contact is not an object"))
	} else if err := requireKeys(contact, "email", "linkedin", "portfolio", "location"); err != nil {
		errs = append(errs, fmt.Errorf("contact: %w", err))
	}
	if name, _ := profile["name"].(string); name != expectedName {
		errs = append(errs, fmt.Errorf("expected name %q, got %q", expectedName, name))
	}
	if tagline, _ := profile["tagline"].(string); !strings.Contains(tagline, "React") {
		errs = append(errs, fmt.Errorf("tagline %q does not mention React", tagline))
	}
	return errors.Join(errs...)
}

func checkSkills(ctx context.Context, c *Checker) error {
	skills, err := c.getList(ctx, "/skills")
	if err != nil {
		return err
	}
	if err := requireKeys(skills[0], "name", "category", "level"); err != nil {
		return err
	}
	return requireValues(skills, "name", "React", "JavaScript", "TypeScript", "Node.js")
}

func checkExperience(ctx context.Context, c *Checker) error {
	experience, err := c.getList(ctx, "/experience")
	if err != nil {
		return err
	}
	if err := requireKeys(experience[0], "id", "company", "position", "duration", "location", "description", "technologies"); err != nil {
		return err
	}
	return requireValues(experience, "company", "98point6 Inc.", "iStreamPlanet", "Redfin")
}

func checkProjects(ctx context.Context, c *Checker) error {
	projects, err := c.getList(ctx, "/projects")
	if err != nil {
		return err
	}
	if err := requireKeys(projects[0], "id", "title", "description", "technologies"); err != nil {
		return err
	}
	return requireValues(projects, "title", "Gerrymander Explorer", "Indulge - Seattle Tweet Map", "Pebble Design System")
}

func checkStatusRoundTrip(ctx context.Context, c *Checker) error {
	var created struct {
		ID         string `json:"id"`
		ClientName string `json:"client_name"`
		Timestamp  string `json:"timestamp"`
	}
	name := c.ClientName
	if name == "" {
		name = "apicheck"
	}
	payload := map[string]string{"client_name": name}
	if err := c.do(ctx, http.MethodPost, "/status", payload, http.StatusCreated, &created); err != nil {
		return err
	}
	if created.ID == "" || created.Timestamp == "" {
		return errors.New("created status check is missing id or timestamp")
	}
	if created.ClientName != name {
		return fmt.Errorf("expected client_name %q, got %q", name, created.ClientName)
	}

	var listed []map[string]any
	if err := c.do(ctx, http.MethodGet, "/status", nil, http.StatusOK, &listed); err != nil {
		return err
	}
	for _, item := range listed {
		if item["id"] == created.ID {
			return nil
		}
	}
	return fmt.Errorf("status check %s not returned by GET /status", created.ID)
}
