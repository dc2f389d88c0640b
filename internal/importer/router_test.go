package importer_test

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/gillpay/internal/importer"
)

func TestRouter_Parse(t *testing.T) {
	isXML := func(head []byte) bool { return bytes.HasPrefix(head, []byte("<?xml")) }

	type testCase struct {
		name    string
		input   string
		wantXML bool
	}

	tests := []testCase{
		{name: "Matched", input: `<?xml version="1.0"?><ofx/>`, wantXML: true},
		{name: "Fallback", input: "Date,Description,Amount\n"},
		{name: "Empty", input: ""},
		{name: "LongerThanSniff", input: "<?xml " + strings.Repeat("x", 2048), wantXML: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			xml := importer.NewMockImporter(ctrl)
			csv := importer.NewMockImporter(ctrl)

			// The chosen parser must still see the whole input.
			consume := func(r io.Reader) (*importer.Statement, error) {
				b, err := io.ReadAll(r)
				require.NoError(t, err)
				assert.Equal(t, tt.input, string(b))

				return &importer.Statement{}, nil
			}

			if tt.wantXML {
				xml.EXPECT().Parse(gomock.Any()).DoAndReturn(consume)
			} else {
				csv.EXPECT().Parse(gomock.Any()).DoAndReturn(consume)
			}

			r := importer.NewRouter(csv, importer.Format{Match: isXML, Parser: xml})

			_, err := r.Parse(strings.NewReader(tt.input))
			require.NoError(t, err)
		})
	}
}
