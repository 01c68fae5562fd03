// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/faculty-kb/internal/hub"
	"github.com/pdiddy/faculty-kb/internal/kb"
	"github.com/pdiddy/faculty-kb/pkg/types"
)

const (
	defaultInput      = "public/faculty-data.json"
	defaultOutput     = "alu_brain/faculty.json"
	defaultRepoID     = "Ngum/alu-chatbot"
	defaultPathInRepo = "alu_brain/faculty.json"
	defaultLocalFile  = "faculty_temp.json"
	defaultTimeout    = 60 * time.Second
)

func setDefaults() {
	viper.SetDefault("build.input", defaultInput)
	viper.SetDefault("build.output", defaultOutput)
	viper.SetDefault("build.format", string(types.FormatJSON))
	viper.SetDefault("contact.email", kb.DefaultEmail)
	viper.SetDefault("contact.phone", kb.DefaultPhone)
	viper.SetDefault("hub.endpoint", hub.DefaultEndpoint)
	viper.SetDefault("hub.repo_id", defaultRepoID)
	viper.SetDefault("hub.repo_type", hub.DefaultRepoType)
	viper.SetDefault("hub.revision", hub.DefaultRevision)
	viper.SetDefault("hub.path_in_repo", defaultPathInRepo)
	viper.SetDefault("hub.timeout", defaultTimeout)
	viper.SetDefault("upload.local_file", defaultLocalFile)
}

// stringSetting returns the flag value when the user set the flag, and the
// viper value for key (config file, environment, default) otherwise.
func stringSetting(cmd *cobra.Command, flag, key string) string {
	if f := cmd.Flags().Lookup(flag); f != nil && f.Changed {
		return f.Value.String()
	}
	return viper.GetString(key)
}

func boolSetting(cmd *cobra.Command, flag, key string) bool {
	if cmd.Flags().Changed(flag) {
		v, _ := cmd.Flags().GetBool(flag)
		return v
	}
	return viper.GetBool(key)
}

func durationSetting(cmd *cobra.Command, flag, key string) time.Duration {
	if cmd.Flags().Changed(flag) {
		v, _ := cmd.Flags().GetDuration(flag)
		return v
	}
	return viper.GetDuration(key)
}

func buildConfig(cmd *cobra.Command) types.BuildConfig {
	return types.BuildConfig{
		Input:       stringSetting(cmd, "input", "build.input"),
		Output:      stringSetting(cmd, "output", "build.output"),
		Format:      types.OutputFormat(stringSetting(cmd, "format", "build.format")),
		LastUpdated: stringSetting(cmd, "last-updated", "build.last_updated"),
		Source:      stringSetting(cmd, "source", "build.source"),
		Contact: types.Contact{
			Email: viper.GetString("contact.email"),
			Phone: viper.GetString("contact.phone"),
		},
	}
}

func hubConfig(cmd *cobra.Command, token string) types.HubConfig {
	return types.HubConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   durationSetting(cmd, "timeout", "hub.timeout"),
			UserAgent: "faculty-kb/" + version,
		},
		Endpoint: stringSetting(cmd, "endpoint", "hub.endpoint"),
		Token:    token,
		RepoType: stringSetting(cmd, "repo-type", "hub.repo_type"),
		Revision: stringSetting(cmd, "revision", "hub.revision"),
	}
}

func uploadConfig(cmd *cobra.Command) types.UploadConfig {
	return types.UploadConfig{
		RepoID:        stringSetting(cmd, "repo", "hub.repo_id"),
		PathInRepo:    stringSetting(cmd, "path-in-repo", "hub.path_in_repo"),
		CommitMessage: stringSetting(cmd, "message", "upload.commit_message"),
		LocalFile:     stringSetting(cmd, "local-file", "upload.local_file"),
		KeepLocal:     boolSetting(cmd, "keep-local", "upload.keep_local"),
	}
}

// pipelineConfig resolves every stage's settings for cmd. Flags cmd does not
// define fall through to the config file, environment and defaults.
func pipelineConfig(cmd *cobra.Command, token string) types.PipelineConfig {
	return types.PipelineConfig{
		Build:  buildConfig(cmd),
		Hub:    hubConfig(cmd, token),
		Upload: uploadConfig(cmd),
	}
}
