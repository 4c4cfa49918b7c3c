package profiling

import (
	"fmt"
	"strings"
	"time"

	"github.com/getmentor/readme-generator/config"
	"github.com/getmentor/readme-generator/pkg/logger"
	"github.com/grafana/pyroscope-go"
	"go.uber.org/zap"
)

const defaultUploadInterval = 15 * time.Second

var defaultProfileTypes = []pyroscope.ProfileType{
	pyroscope.ProfileCPU,
	pyroscope.ProfileAllocSpace,
	pyroscope.ProfileAllocObjects,
	pyroscope.ProfileGoroutines,
}

var profileTypeMap = map[string][]pyroscope.ProfileType{
	"cpu":           {pyroscope.ProfileCPU},
	"alloc_space":   {pyroscope.ProfileAllocSpace},
	"alloc_objects": {pyroscope.ProfileAllocObjects},
	"inuse_space":   {pyroscope.ProfileInuseSpace},
	"inuse_objects": {pyroscope.ProfileInuseObjects},
	"goroutines":    {pyroscope.ProfileGoroutines},
	"mutex":         {pyroscope.ProfileMutexCount, pyroscope.ProfileMutexDuration},
	"block":         {pyroscope.ProfileBlockCount, pyroscope.ProfileBlockDuration},
}

// Start begins continuous profiling when enabled and returns its stop function.
func Start(cfg *config.Config) (func(), error) {
	p := cfg.Profiling
	if !p.Enabled {
		logger.Info("Continuous profiling disabled")
		return func() {}, nil
	}

	endpoint := strings.TrimSpace(p.Endpoint)
	if endpoint == "" {
		return nil, fmt.Errorf("profiling endpoint is required when profiling is enabled")
	}

	uploadRate := time.Duration(p.UploadIntervalSeconds) * time.Second
	if uploadRate <= 0 {
		uploadRate = defaultUploadInterval
	}

	profileTypes, err := parseProfileTypes(p.SampleTypes)
	if err != nil {
		return nil, err
	}

	appName := applicationName(p.AppName, cfg.Observability, cfg.Server.AppEnv)

	profiler, err := pyroscope.Start(pyroscope.Config{
		ApplicationName: appName,
		ServerAddress:   endpoint,
		UploadRate:      uploadRate,
		ProfileTypes:    profileTypes,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start profiler: %w", err)
	}

	logger.Info("Continuous profiling initialized",
		zap.String("application_name", appName),
		zap.String("endpoint", endpoint),
		zap.Duration("upload_rate", uploadRate),
	)

	return func() {
		if stopErr := profiler.Stop(); stopErr != nil {
			logger.Error("Failed to stop profiler", zap.Error(stopErr))
		}
	}, nil
}

func parseProfileTypes(value string) ([]pyroscope.ProfileType, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return defaultProfileTypes, nil
	}

	var types []pyroscope.ProfileType
	seen := make(map[pyroscope.ProfileType]bool)

	for _, raw := range strings.Split(value, ",") {
		key := strings.ToLower(strings.TrimSpace(raw))
		if key == "" {
			continue
		}
		mapped, ok := profileTypeMap[key]
		if !ok {
			return nil, fmt.Errorf("unsupported O11Y_PROFILING_SAMPLE_TYPES value: %q", key)
		}

		for _, t := range mapped {
			if !seen[t] {
				types = append(types, t)
				seen[t] = true
			}
		}
	}

	if len(types) == 0 {
		return defaultProfileTypes, nil
	}

	return types, nil
}

// applicationName encodes service labels the way pyroscope expects: name{k=v,...}
func applicationName(base string, o config.ObservabilityConfig, environment string) string {
	base = strings.TrimSpace(base)
	if base == "" {
		base = "readme-generator"
	}

	labels := []string{
		"service_name=" + o.ServiceName,
		"namespace=" + o.ServiceNamespace,
		"environment=" + environment,
		"service_version=" + o.ServiceVersion,
	}
	if o.ServiceInstanceID != "" {
		labels = append(labels, "instance="+o.ServiceInstanceID)
	}

	return base + "{" + strings.Join(labels, ",") + "}"
}
