// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/faculty-kb/internal/hub"
	"github.com/pdiddy/faculty-kb/internal/secrets"
	"github.com/pdiddy/faculty-kb/internal/upload"
)

var uploadCmd = &cobra.Command{
	Use:   "upload",
	Short: "Build the knowledge base and upload it to a Hugging Face repository",
	Long: `Upload builds the knowledge-base document from the roster, writes it to a
local file, and commits it to the destination path of a Hugging Face
repository (a Space by default). The upload is attempted once. When it fails
the local file is kept so it can be uploaded by hand.

The access token is read from HF_TOKEN, HUGGING_FACE_TOKEN, or
.secrets/hf-token; a .env file in the working directory is loaded first.
Without a token you are asked to confirm unless --yes is given.`,
	RunE: runUpload,
}

func init() {
	addBuildFlags(uploadCmd)
	uploadCmd.Flags().String("repo", defaultRepoID, "destination repository id")
	uploadCmd.Flags().String("repo-type", hub.DefaultRepoType, "repository type: space, model, or dataset")
	uploadCmd.Flags().String("revision", hub.DefaultRevision, "branch to commit to")
	uploadCmd.Flags().String("endpoint", hub.DefaultEndpoint, "Hugging Face Hub base URL")
	uploadCmd.Flags().String("path-in-repo", defaultPathInRepo, "destination path inside the repository")
	uploadCmd.Flags().String("message", "", "commit message (default names the faculty count)")
	uploadCmd.Flags().String("local-file", defaultLocalFile, "local copy written before upload")
	uploadCmd.Flags().Bool("keep-local", false, "keep the local copy after a successful upload")
	uploadCmd.Flags().Duration("timeout", defaultTimeout, "HTTP request timeout")
	uploadCmd.Flags().BoolP("yes", "y", false, "do not ask for confirmation when no token is found")

	rootCmd.AddCommand(uploadCmd)
}

func runUpload(cmd *cobra.Command, args []string) error {
	w := cmd.OutOrStdout()

	token, origin := secrets.HubToken(os.Getenv, loadedSecrets)
	if token != "" {
		fmt.Fprintf(w, "Found Hugging Face token in %s\n", origin)
	} else {
		fmt.Fprintln(w, "No Hugging Face token found (HF_TOKEN, HUGGING_FACE_TOKEN, .secrets/hf-token).")
		fmt.Fprintln(w, "The upload will be attempted without credentials.")
		if yes, _ := cmd.Flags().GetBool("yes"); !yes {
			if !confirm(cmd.InOrStdin(), w, "Continue anyway? (y/n): ") {
				fmt.Fprintln(w, "Upload cancelled")
				fmt.Fprintln(w, "Run 'faculty-kb preview' to inspect the roster.")
				return nil
			}
		}
	}

	pc := pipelineConfig(cmd, token)
	doc, err := loadAndBuild(pc.Build, w)
	if err != nil {
		return err
	}

	client := hub.NewClient(pc.Hub, logger)
	cfg := pc.Upload

	res, err := upload.Publish(cmd.Context(), client, doc, cfg, w, logger)
	if err != nil {
		fmt.Fprintln(w, "\nTroubleshooting:")
		fmt.Fprintln(w, "   1. Check that HF_TOKEN holds a token with write access")
		fmt.Fprintf(w, "   2. Check that the repository exists: %s\n", client.RepoURL(cfg.RepoID))
		fmt.Fprintf(w, "   3. Upload %s by hand to %s\n", cfg.LocalFile, cfg.PathInRepo)
		return err
	}

	fmt.Fprintf(w, "\nFaculty knowledge base published (%d bytes, commit %q)\n", res.Bytes, res.CommitMessage)
	fmt.Fprintf(w, "View the repository at: %s\n", client.RepoURL(res.RepoID))
	return nil
}

// confirm prints prompt and reports whether the answer read from in is "y".
// End of input counts as no.
func confirm(in io.Reader, out io.Writer, prompt string) bool {
	fmt.Fprint(out, prompt)
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && line == "" {
		fmt.Fprintln(out)
		return false
	}
	return strings.ToLower(strings.TrimSpace(line)) == "y"
}
