package column

// ParseConfig applies a column config value such as "always", "never,row"
// or "auto column" to mode. stdoutIsTTY decides the outcome of "auto".
//
// A value that sets a layout without any of always/never/auto also turns
// column output on. On error mode is left unchanged.
func ParseConfig(mode *Mode, value string, stdoutIsTTY bool) error {
	return ParseConfigWith(defaultVocabulary, mode, value, stdoutIsTTY)
}

// ParseConfigWith is ParseConfig against a caller supplied vocabulary.
func ParseConfigWith(v *Vocabulary, mode *Mode, value string, stdoutIsTTY bool) error {
	m, groups, err := v.apply(*mode, value, stdoutIsTTY)
	if err != nil {
		return err
	}
	if groups.layout && !groups.enable {
		m.Enabled = true
		m.EnabledSet = true
	}
	*mode = m
	return nil
}
