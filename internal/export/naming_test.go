package export

import "testing"

func TestSubstituteName(t *testing.T) {
	cases := []struct {
		name    string
		pattern string
		locale  string
		device  string
		index   int
		want    string
	}{
		{
			name:    "default pattern",
			pattern: "{locale}/{device}/{index}",
			locale:  "en",
			device:  "iphone-6.9",
			index:   1,
			want:    "en/iphone-6.9/1",
		},
		{
			name:    "no zero padding",
			pattern: "{locale}/{device}/{index}",
			locale:  "de",
			device:  "ipad-13",
			index:   12,
			want:    "de/ipad-13/12",
		},
		{
			name:    "flat pattern",
			pattern: "{device}_{locale}_{index}",
			locale:  "fr",
			device:  "mac-16",
			index:   3,
			want:    "mac-16_fr_3",
		},
		{
			name:    "empty pattern falls back to default",
			pattern: "",
			locale:  "ja",
			device:  "iphone-6.1",
			index:   2,
			want:    "ja/iphone-6.1/2",
		},
		{
			name:    "pattern without placeholders is kept verbatim",
			pattern: "screenshot",
			locale:  "en",
			device:  "iphone-6.9",
			index:   4,
			want:    "screenshot",
		},
		{
			name:    "repeated placeholder",
			pattern: "{locale}/{locale}-{index}",
			locale:  "ko",
			device:  "iphone-6.9",
			index:   7,
			want:    "ko/ko-7",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := SubstituteName(tc.pattern, tc.locale, tc.device, tc.index)
			if got != tc.want {
				t.Fatalf("SubstituteName(%q, %q, %q, %d) = %q, want %q",
					tc.pattern, tc.locale, tc.device, tc.index, got, tc.want)
			}
		})
	}
}
