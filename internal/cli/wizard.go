package cli

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
)

// promptAPIKey asks for the API token without echoing it.
func promptAPIKey() (string, error) {
	var key string
	prompt := &survey.Password{
		Message: "exaroton API token (from https://exaroton.com/account/):",
	}
	if err := survey.AskOne(prompt, &key, survey.WithValidator(survey.Required)); err != nil {
		return "", err
	}
	return key, nil
}

// confirmDeletion asks before destroying something remote.
func confirmDeletion(what string) (bool, error) {
	confirmed := false
	prompt := &survey.Confirm{
		Message: fmt.Sprintf("Really delete %s? This cannot be undone.", what),
		Default: false,
	}
	if err := survey.AskOne(prompt, &confirmed); err != nil {
		return false, err
	}
	return confirmed, nil
}
