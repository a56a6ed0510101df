package server

import (
	"github.com/jglims/portfolio/internal/live"
	"github.com/jglims/portfolio/internal/viewport"
)

// NavItem is a nav link and the i18n key of its label.
type NavItem struct {
	Href   string
	Key    string
	Smooth bool
}

type SkillGroup struct {
	Key  string // i18n key of the heading
	Tags []Tag
}

// Tag is a skill or project tag; Key is set when the tag is translated.
type Tag struct {
	Text string
	Key  string
}

type Project struct {
	ID    string
	Title string
	Desc  string
	Tags  []Tag
}

// sectionIDs are the page sections in document order.
var sectionIDs = []string{"hero", "about", "skills", "experience", "projects", "education", "contact"}

var navKeys = []struct{ id, key string }{
	{"about", "nav_about"},
	{"skills", "nav_skills"},
	{"experience", "nav_experience"},
	{"projects", "nav_projects"},
	{"education", "nav_education"},
	{"contact", "nav_contact"},
}

var skillGroups = []SkillGroup{
	{"skill_languages", []Tag{{Text: "Python"}, {Text: "C++"}, {Text: "TypeScript"}, {Text: "JavaScript"}, {Text: "Java"}, {Text: "Go"}}},
	{"skill_data", []Tag{{Text: "PostgreSQL"}, {Text: "SQLite"}, {Text: "REST APIs"}, {Text: "OpenCV"}}},
	{"skill_devops", []Tag{{Text: "Git"}, {Text: "Docker"}, {Text: "Linux"}, {Text: "systemd"}, {Text: "Nginx"}}},
	{"skill_practices", []Tag{{Text: "TDD"}, {Text: "Clean Architecture"}, {Key: "tag_modular"}, {Text: "Code Review"}}},
	{"skill_cloud", []Tag{{Text: "Oracle Cloud"}, {Text: "iptables"}, {Key: "tag_monitoring"}}},
}

var projects = []Project{
	{"proj1", "proj1_title", "proj1_desc", []Tag{{Text: "Go"}, {Text: "Gin"}, {Text: "WebSocket"}, {Text: "SQLite"}}},
	{"proj2", "proj2_title", "proj2_desc", []Tag{{Text: "Python"}, {Text: "OpenCV"}, {Text: "ML"}}},
	{"proj3", "proj3_title", "proj3_desc", []Tag{{Text: "Python"}, {Text: "Telegram API"}}},
	{"proj4", "proj4_title", "proj4_desc", []Tag{{Text: "Oracle Cloud"}, {Text: "Linux"}, {Text: "Python"}, {Text: "Nginx"}}},
	{"proj5", "proj5_title", "proj5_desc", []Tag{{Text: "C++"}, {Key: "tag_architecture"}}},
}

// revealIDs are the elements that fade in on first sight.
var revealIDs = []string{
	"reveal-about", "reveal-skills", "reveal-experience",
	"reveal-projects", "reveal-education", "reveal-contact",
}

// navItems resolves every nav anchor against the sections on the page.
func navItems() []NavItem {
	items := make([]NavItem, 0, len(navKeys))
	for _, n := range navKeys {
		href := "#" + n.id
		items = append(items, NavItem{Href: href, Key: n.key, Smooth: anchorSmooth(href)})
	}
	return items
}

// anchorSmooth reports whether an in-page link to href gets smooth scrolling.
func anchorSmooth(href string) bool {
	ids := make(map[string]bool, len(sectionIDs))
	for _, id := range sectionIDs {
		ids[id] = true
	}
	_, action := viewport.ResolveAnchor(href, ids)
	return action == viewport.SmoothScroll
}

// livePage describes the page to websocket sessions.
func livePage() live.Page {
	p := live.Page{Reveals: revealIDs}
	for _, n := range navKeys {
		p.Sections = append(p.Sections, n.id)
		p.NavLinks = append(p.NavLinks, "#"+n.id)
	}
	return p
}
