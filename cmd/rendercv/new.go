package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var newCmd = &cobra.Command{
	Use:   "new <full name>",
	Short: "Create a starter CV input file",
	Long:  "Writes a sample YAML input file with placeholder content, ready to edit and render.",
	Args:  cobra.ExactArgs(1),
	RunE:  runNew,
}

var newTheme string

func init() {
	newCmd.Flags().StringVar(&newTheme, "theme", "classic", "Theme the starter file uses")

	rootCmd.AddCommand(newCmd)
}

const sampleInput = `cv:
  name: %s
  location: Your Location
  email: youremail@yourdomain.com
  phone: "+905419999999"
  website: https://yourwebsite.com
  social_networks:
    - network: LinkedIn
      username: yourusername
    - network: GitHub
      username: yourusername
  sections:
    summary:
      - This is an example *summary* entry. Replace it with a short
        description of who you are and what you do.
    education:
      - institution: University of Pennsylvania
        area: Computer Science
        degree: BS
        start_date: "2000-09"
        end_date: "2005-05"
        highlights:
          - "GPA: 3.9/4.0"
    experience:
      - company: Some Company
        position: Software Engineer
        location: TX, USA
        start_date: "2020-07"
        end_date: present
        highlights:
          - Worked on something **important**.
          - Reduced time to do X by 30%%.
    projects:
      - name: Some Project
        url: https://github.com/yourusername/someproject
        date: "2024-05"
        highlights:
          - Developed a tool with [Go](https://go.dev).
design:
  theme: %s
`

func runNew(_ *cobra.Command, args []string) error {
	name := args[0]
	fileName := strings.Join(strings.Fields(name), "_") + "_CV.yaml"

	if _, err := os.Stat(fileName); err == nil {
		return fmt.Errorf("%s already exists, refusing to overwrite it", fileName)
	}

	content := fmt.Sprintf(sampleInput, name, newTheme)
	if err := os.WriteFile(fileName, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", fileName, err)
	}

	fmt.Printf("Created %s\n", fileName)
	return nil
}
