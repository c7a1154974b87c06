package config

// Sackfile is the structure of sack.yaml.
type Sackfile struct {
	Version          string    `yaml:"version"`
	InstallRoot      string    `yaml:"installroot"`
	CacheDir         string    `yaml:"cachedir"`
	RPMDB            string    `yaml:"rpmdb"`
	YumDB            string    `yaml:"yumdb"`
	InstallOnly      []string  `yaml:"installonly"`
	InstallOnlyLimit *uint     `yaml:"installonly_limit"`
	Repos            []RepoDTO `yaml:"repos"`
}

// RepoDTO is a repository definition. Enabled defaults to true and GPGCheck to false.
type RepoDTO struct {
	ID       string   `yaml:"id"`
	Name     string   `yaml:"name"`
	BaseURL  string   `yaml:"baseurl"`
	Enabled  *bool    `yaml:"enabled"`
	GPGCheck *bool    `yaml:"gpgcheck"`
	GPGKey   []string `yaml:"gpgkey"`
}
