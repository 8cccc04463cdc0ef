// Copyright (c) 2026 - for information on the respective copyright owner
// see the NOTICE file and/or the repository at
// https://github.com/tempo-labs/tempo-actions
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"github.com/spf13/cobra"
)

var (
	// version holds the version of the tempo binary. Default value is empty string.
	// It is set to the tag name during build using linker flags, if the binary is built from a tagged version.
	version string

	// gitCommitID holds the git commit ID of the source code used for building the binary. It is set during
	// build using linker flags.
	gitCommitID string
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version information for tempo",
		Long:  `Print the version information for tempo`,
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("%s Git revision: %s\n", version, gitCommitID)
		},
	}
}
