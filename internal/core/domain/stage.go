package domain

import "time"

// Stage names, in pipeline order.
const (
	StageRequirements = "requirements"
	StageSync         = "repository-sync"
	StageClean        = "clean"
	StageDependencies = "dependencies"
	StageBuild        = "build"
	StageSmokeTest    = "smoke-test"
	StageInstall      = "install"
	StageVerify       = "verify"
	StageReport       = "report"
)

// StageOrder lists every stage in the order the installer runs them.
var StageOrder = []string{
	StageRequirements,
	StageSync,
	StageClean,
	StageDependencies,
	StageBuild,
	StageSmokeTest,
	StageInstall,
	StageVerify,
	StageReport,
}

// StageTiming records how long a finished stage took.
type StageTiming struct {
	Name     string
	Duration time.Duration
	Failed   bool
}
