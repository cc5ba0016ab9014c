package secrets

import (
	"secretsdir/internal/codec"
	"secretsdir/internal/fsutil"
)

// SecretFilePath returns name joined onto the resolved secrets directory.
func (s *Service) SecretFilePath(name string) (string, error) {
	dir, err := s.ResolveSecretsDirectory()
	if err != nil {
		return "", err
	}
	return fsutil.Combine(dir, name), nil
}

// LoadSecretFile decodes the secret file name into v. JSON (with comments)
// and YAML are recognised by extension. If optional is true a missing file
// leaves v untouched and returns nil.
func (s *Service) LoadSecretFile(name string, optional bool, v any) error {
	path, err := s.SecretFilePath(name)
	if err != nil {
		return err
	}

	data, err := s.files.ReadFile(path)
	if err != nil {
		if optional && fsutil.IsNotExist(err) {
			return nil
		}
		return err
	}
	return codec.DecodeFile(path, data, v)
}
