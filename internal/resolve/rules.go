package resolve

import (
	"sort"

	"github.com/agentsel-dev/agentsel/internal/project"
)

// coreProfiles are always active unless explicitly excluded.
var coreProfiles = []string{"documentation", "testing", "version-control"}

// typeProfiles maps a project type to its default profile set.
// fullstack is the union of the web and api sets.
var typeProfiles = map[project.Type][]string{
	project.TypeWeb:       {"frontend", "design"},
	project.TypeAPI:       {"backend", "api-design"},
	project.TypeFullstack: {"frontend", "design", "backend", "api-design"},
	project.TypeMobile:    {"mobile", "design"},
	project.TypeDesktop:   {"desktop", "design"},
	project.TypeCLI:       {"cli"},
	project.TypeOther:     nil,
}

// dimensionProfiles maps (dimension, value) to the single profile that value
// activates. Each dimension's value set is closed; anything outside it is an
// UnknownValueError.
var dimensionProfiles = map[string]map[string]string{
	project.DimFrontend: {
		"react":  "react-frontend",
		"nextjs": "nextjs-frontend",
		"vue":    "vue-frontend",
	},
	project.DimBackend: {
		"supabase": "supabase-backend",
		"firebase": "firebase-backend",
		"aws":      "aws-backend",
		"custom":   "backend",
	},
	project.DimMobile: {
		"flutter":      "flutter-mobile",
		"react-native": "react-native-mobile",
		"ios-native":   "ios-native-mobile",
	},
	project.DimDatabase: {
		"postgres": "postgres-db",
		"mysql":    "mysql-db",
		"mongodb":  "mongodb-db",
		"sqlite":   "sqlite-db",
	},
	project.DimDeployment: {
		"vercel":  "vercel-deploy",
		"netlify": "netlify-deploy",
		"aws":     "aws-deploy",
		"docker":  "docker-deploy",
	},
}

// featureProfiles maps an enabled feature to the profile it activates.
// testing-extra maps onto the core testing id; deduplication keeps the
// core-tier placement and merges the reasons.
var featureProfiles = map[string]string{
	"authentication": "auth",
	"payments":       "payments",
	"realtime":       "realtime",
	"email":          "email",
	"i18n":           "i18n",
	"pwa":            "pwa",
	"analytics":      "analytics",
	"testing-extra":  "testing",
}

// allowedValues returns the closed value enumeration for a dimension,
// sorted, with "none" appended. Returns nil for unknown dimensions.
func allowedValues(dimension string) []string {
	table, ok := dimensionProfiles[dimension]
	if !ok {
		return nil
	}
	values := make([]string, 0, len(table)+1)
	for v := range table {
		values = append(values, v)
	}
	sort.Strings(values)
	return append(values, project.None)
}
