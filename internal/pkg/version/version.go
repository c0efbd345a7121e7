// Package version 빌드 시점에 주입된 메타데이터와 실행 환경 정보를 제공합니다.
//
// 빌드 예:
//
//	go build -ldflags "\
//	  -X github.com/darkkaiser/snowflake-server/internal/pkg/version.appVersion=v1.0.0 \
//	  -X github.com/darkkaiser/snowflake-server/internal/pkg/version.gitCommitHash=$(git rev-parse HEAD)" \
//	  ./cmd/snowflake-server
//
// ldflags 주입이 없는 개발 환경(go run 등)에서는 debug.ReadBuildInfo의 VCS 정보로 보강합니다.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
	"sync/atomic"
)

const (
	unknown = "unknown"
	none    = "none"
)

var globalBuildInfo atomic.Value

// readBuildInfo 테스트에서 교체할 수 있도록 변수로 선언합니다.
var readBuildInfo = debug.ReadBuildInfo

// 링커 플래그(-ldflags -X)로 주입되는 값입니다. 직접 읽지 말고 Get()을 사용합니다.
var (
	appVersion    = ""
	gitCommitHash = ""
	gitTreeState  = "" // clean 또는 dirty
	buildDate     = ""
	buildNumber   = ""
)

func init() {
	set(enrichBuildInfo(Info{
		Version:     strings.TrimSpace(appVersion),
		Commit:      strings.TrimSpace(gitCommitHash),
		BuildDate:   strings.TrimSpace(buildDate),
		BuildNumber: strings.TrimSpace(buildNumber),
		DirtyBuild:  strings.EqualFold(strings.TrimSpace(gitTreeState), "dirty"),
	}))
}

// Info 애플리케이션의 빌드 정보입니다. /version API 응답과 기동 로그에 사용됩니다.
type Info struct {
	Version     string `json:"version"`
	Commit      string `json:"commit"`
	BuildDate   string `json:"build_date"`
	BuildNumber string `json:"build_number"`
	GoVersion   string `json:"go_version"`
	OS          string `json:"os"`
	Arch        string `json:"arch"`
	DirtyBuild  bool   `json:"dirty_build"` // 빌드 시점에 커밋되지 않은 변경사항이 있었는지 여부
}

// Get 애플리케이션의 빌드 정보를 반환합니다.
func Get() Info {
	bi, ok := globalBuildInfo.Load().(Info)
	if !ok {
		return Info{
			Version:     unknown,
			Commit:      unknown,
			BuildDate:   unknown,
			BuildNumber: "0",
		}
	}
	return bi
}

func set(bi Info) {
	globalBuildInfo.Store(bi)
}

// enrichBuildInfo 비어 있는 필드를 런타임 환경 값과 VCS 메타데이터로 채웁니다.
// ldflags로 주입된 값이 있으면 그 값을 우선합니다.
func enrichBuildInfo(bi Info) Info {
	bi.GoVersion = firstNonEmpty(bi.GoVersion, runtime.Version())
	bi.OS = firstNonEmpty(bi.OS, runtime.GOOS)
	bi.Arch = firstNonEmpty(bi.Arch, runtime.GOARCH)

	if vcs, ok := readBuildInfo(); ok {
		bi = mergeVCSSettings(bi, vcs)
	}

	bi.Version = firstNonEmpty(bi.Version, unknown)
	if bi.Commit == none {
		bi.Commit = ""
	}
	bi.Commit = firstNonEmpty(bi.Commit, unknown)

	return bi
}

func mergeVCSSettings(bi Info, vcs *debug.BuildInfo) Info {
	isPlaceholder := func(v string) bool { return v == "" || v == unknown || v == none }

	for _, s := range vcs.Settings {
		switch {
		case s.Key == "vcs.revision" && isPlaceholder(bi.Commit):
			bi.Commit = s.Value
		case s.Key == "vcs.time" && isPlaceholder(bi.BuildDate):
			bi.BuildDate = s.Value
		case s.Key == "vcs.modified" && s.Value == "true":
			bi.DirtyBuild = true
		}
	}

	if bi.Version == "" && vcs.Main.Version != "(devel)" {
		bi.Version = vcs.Main.Version
	}

	return bi
}

func firstNonEmpty(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

// Version 애플리케이션의 버전 문자열을 반환합니다.
func Version() string {
	return Get().Version
}

// ToMap 빌드 정보를 구조적 로깅용 맵으로 반환합니다.
func (i Info) ToMap() map[string]any {
	return map[string]any{
		"version":      i.Version,
		"commit":       i.Commit,
		"build_date":   i.BuildDate,
		"build_number": i.BuildNumber,
		"go_version":   i.GoVersion,
		"os":           i.OS,
		"arch":         i.Arch,
		"dirty_build":  i.DirtyBuild,
	}
}

// String 빌드 정보를 한 줄로 요약합니다. 예: "v1.0.0+dirty (commit: f25b8bf, go_version: go1.24.11)"
func (i Info) String() string {
	if i.Version == "" {
		return unknown
	}

	v := i.Version
	if i.DirtyBuild {
		v += "+dirty"
	}

	commit := i.Commit
	if len(commit) > 7 {
		commit = commit[:7]
	}

	var details []string
	for _, d := range [...]struct{ label, value string }{
		{"commit", commit},
		{"build", i.BuildNumber},
		{"date", i.BuildDate},
		{"go_version", i.GoVersion},
		{"os", i.OS},
		{"arch", i.Arch},
	} {
		if d.value == "" || d.value == unknown {
			continue
		}
		details = append(details, d.label+": "+d.value)
	}

	if len(details) == 0 {
		return v
	}
	return fmt.Sprintf("%s (%s)", v, strings.Join(details, ", "))
}
