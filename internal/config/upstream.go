package config

import (
	"strings"
	"time"
)

// RateMyProf configures the review-site GraphQL endpoint and the school
// every search is scoped to.
type RateMyProf struct {
	GraphQLURL     string        `env:"RMP_GRAPHQL_URL" envDefault:"https://www.ratemyprofessors.com/graphql"`
	SchoolID       string        `env:"RMP_SCHOOL_ID" envDefault:"U2Nob29sLTQ3NDQ="`
	SchoolName     string        `env:"RMP_SCHOOL_NAME" envDefault:"UW Tacoma"`
	Timeout        time.Duration `env:"RMP_TIMEOUT" envDefault:"10s"`
	LogFieldMaxLen int           `env:"RMP_LOG_FIELD_MAX_LEN" envDefault:"1024"`
}

type Anthropic struct {
	APIKey  string        `env:"ANTHROPIC_API_KEY" json:"-"`
	Model   string        `env:"ANTHROPIC_MODEL" envDefault:"claude-haiku-4-5-20251001"`
	Timeout time.Duration `env:"ANTHROPIC_TIMEOUT" envDefault:"15s"`
}

func (a Anthropic) Configured() bool {
	return strings.TrimSpace(a.APIKey) != ""
}

type Pipeline struct {
	ModerationParallel int `env:"PIPELINE_MODERATION_PARALLEL" envDefault:"5"`
}

type KeepAlive struct {
	Interval time.Duration `env:"KEEPALIVE_INTERVAL" envDefault:"5m"`
}
