package report

type messages struct {
	noFile       string
	file         string
	hash         string
	bits         string
	validLengths string
	unknownAlg   string
	assumed      string
	ioError      string
	claimed      string
	computed     string
	ok           string
	okFile       string
	warning      string
	about        string
	prompt       string
}

var catalog = map[string]messages{
	"sv": {
		noFile:       "FEL: ingen fil angiven!",
		file:         "Fil: ",
		hash:         "hash:",
		bits:         "Kontrollsummans längd (bitar): ",
		validLengths: "Längden ska vara 128, 160, 256 eller 512 bitar",
		unknownAlg:   "ERROR: Unknown hash algorithm",
		assumed:      "Antar kontrollsummealgoritmen (HASH): ",
		ioError:      "I/O-fel",
		claimed:      "Angiven kontrollsumma (hash):",
		computed:     "Beräknad kontrollsumma (hash):",
		ok:           "OK!",
		okFile:       "Kontrollsumman OK av filen:",
		warning:      "*** !!! VARNING: Felaktig kontrollsumma. !!! ***",
		about: `CHECKHASH - beräknar kontrollsumman för en fil och jämför den med angiven kontrollsumma.

Algoritmen väljs efter kontrollsummans längd:
  32 tecken  MD5
  40 tecken  SHA-1
  64 tecken  SHA-256
  128 tecken SHA-512`,
		prompt: "Klistra in kontrollsumman och avsluta med Ctrl-D:",
	},
	"en": {
		noFile:       "ERROR: no file specified!",
		file:         "File: ",
		hash:         "hash:",
		bits:         "Checksum length (bits): ",
		validLengths: "The length must be 128, 160, 256 or 512 bits",
		unknownAlg:   "ERROR: Unknown hash algorithm",
		assumed:      "Assuming checksum algorithm (HASH): ",
		ioError:      "I/O error",
		claimed:      "Given checksum (hash):",
		computed:     "Computed checksum (hash):",
		ok:           "OK!",
		okFile:       "Checksum OK for file:",
		warning:      "*** !!! WARNING: Incorrect checksum. !!! ***",
		about: `CHECKHASH - calculates the checksum of a file and compares it with the one you supply.

The algorithm is chosen by the length of the checksum:
  32 characters  MD5
  40 characters  SHA-1
  64 characters  SHA-256
  128 characters SHA-512`,
		prompt: "Paste the checksum, then press Ctrl-D:",
	},
}

func lookup(lang string) messages {
	if m, ok := catalog[lang]; ok {
		return m
	}
	return catalog["sv"]
}
