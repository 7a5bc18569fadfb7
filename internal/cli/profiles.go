package cli

import (
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// profileExport is the YAML shape of 'profiles export'.
type profileExport struct {
	Profiles []exportedProfile `yaml:"profiles"`
}

type exportedProfile struct {
	Name      string    `yaml:"name"`
	APIKey    string    `yaml:"api_key"`
	CreatedAt time.Time `yaml:"created_at"`
}

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "Manage stored credential profiles",
}

var profilesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored profiles",
	RunE:  runProfilesList,
}

var profilesReveal bool

var profilesExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Print stored profiles as YAML",
	Long: `Prints all stored profiles as YAML. API keys are redacted unless
--reveal is given.`,
	RunE: runProfilesExport,
}

func init() {
	profilesExportCmd.Flags().BoolVar(&profilesReveal, "reveal", false, "include the API keys in clear text")

	rootCmd.AddCommand(profilesCmd)
	profilesCmd.AddCommand(profilesListCmd)
	profilesCmd.AddCommand(profilesExportCmd)
}

func runProfilesList(cmd *cobra.Command, args []string) error {
	store, err := openState()
	if err != nil {
		return err
	}
	defer store.Close()

	profiles, err := store.ListProfiles()
	if err != nil {
		return err
	}

	if len(profiles) == 0 {
		cmd.Println("No profiles stored. Run 'exaroton login' to create one.")
		return nil
	}
	for _, profile := range profiles {
		marker := " "
		if profile.Name == profileName {
			marker = "*"
		}
		cmd.Printf("%s %s (created %s)\n", marker, profile.Name, profile.CreatedAt.Format("2006-01-02"))
	}
	return nil
}

func runProfilesExport(cmd *cobra.Command, args []string) error {
	store, err := openState()
	if err != nil {
		return err
	}
	defer store.Close()

	profiles, err := store.ListProfiles()
	if err != nil {
		return err
	}

	export := profileExport{}
	for _, profile := range profiles {
		key := profile.APIKey
		if !profilesReveal {
			key = redactKey(key)
		}
		export.Profiles = append(export.Profiles, exportedProfile{
			Name:      profile.Name,
			APIKey:    key,
			CreatedAt: profile.CreatedAt,
		})
	}

	data, err := yaml.Marshal(export)
	if err != nil {
		return err
	}
	cmd.Print(string(data))
	return nil
}

// redactKey keeps just enough of a key to recognize it.
func redactKey(key string) string {
	if len(key) <= 4 {
		return "****"
	}
	return key[:4] + "****"
}
