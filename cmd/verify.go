/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"io/ioutil"
	"os"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/notargets/sphkern/suite"
)

// VerifyCmd represents the verify command
var VerifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Run the kernel moment-verification suite",
	Long: `
Runs the scenario catalog: point smoke checks followed by kernel and
gradient moment integrals, each compared against its analytic
expectation within a per-scenario precision budget,

sphkern verify`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			err error
			m   = &VerifyModel{}
		)
		if m.ScenarioFile, err = cmd.Flags().GetString("scenarios"); err != nil {
			panic(err)
		}
		if m.Family, err = cmd.Flags().GetString("family"); err != nil {
			panic(err)
		}
		if m.Profile, err = cmd.Flags().GetBool("profile"); err != nil {
			panic(err)
		}
		RunVerify(m)
	},
}

func init() {
	rootCmd.AddCommand(VerifyCmd)
	VerifyCmd.Flags().StringP("scenarios", "s", "", "YAML scenario file replacing the built-in catalog")
	VerifyCmd.Flags().StringP("family", "f", "", "restrict the run to one kernel family")
	VerifyCmd.Flags().Bool("profile", false, "write a CPU profile for the run")
}

type VerifyModel struct {
	ScenarioFile string
	Family       string
	Profile      bool
}

func RunVerify(m *VerifyModel) {
	if m.Profile {
		defer profile.Start(profile.CPUProfile).Stop()
	}
	scenarios := suite.Catalog()
	if len(m.ScenarioFile) != 0 {
		var (
			sf   suite.ScenarioFile
			data []byte
			err  error
		)
		if data, err = ioutil.ReadFile(m.ScenarioFile); err != nil {
			fmt.Printf("unable to read scenario file [%s]: %s\n", m.ScenarioFile, err)
			os.Exit(1)
		}
		if err = sf.Parse(data); err != nil {
			fmt.Printf("unable to parse scenario file [%s]: %s\n", m.ScenarioFile, err)
			os.Exit(1)
		}
		fmt.Printf("\"%s\"\t\t= Scenario file\n", sf.Title)
		scenarios = sf.Scenarios
	}
	rp := suite.Run(suite.Filter(scenarios, m.Family))
	rp.Print()
	if rp.Failures() != 0 {
		os.Exit(1)
	}
}
