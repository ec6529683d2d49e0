package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateCouponsRequest_Validate(t *testing.T) {
	t.Run("Success_EmptyRequest", func(t *testing.T) {
		req := GenerateCouponsRequest{}

		err := req.Validate()
		assert.NoError(t, err)
	})

	t.Run("Success_FullRequest", func(t *testing.T) {
		req := GenerateCouponsRequest{
			Profile: "spring-sale",
			Count:   1,
			Seed:    "0001020304050607",
		}

		err := req.Validate()
		assert.NoError(t, err)
	})

	t.Run("Error_NegativeCount", func(t *testing.T) {
		req := GenerateCouponsRequest{Count: -1}

		err := req.Validate()
		assert.Error(t, err)
	})

	t.Run("Error_SeedNotHex", func(t *testing.T) {
		req := GenerateCouponsRequest{Seed: "zz01020304050607"}

		err := req.Validate()
		assert.Error(t, err)
	})

	t.Run("Error_SeedWrongLength", func(t *testing.T) {
		req := GenerateCouponsRequest{Seed: "0001"}

		err := req.Validate()
		assert.Error(t, err)
	})

	t.Run("Error_ProfileWithWhitespace", func(t *testing.T) {
		req := GenerateCouponsRequest{Profile: " spring-sale"}

		err := req.Validate()
		assert.Error(t, err)
	})
}

func TestValidateCouponsRequest_Validate(t *testing.T) {
	t.Run("Success_SingleCode", func(t *testing.T) {
		req := ValidateCouponsRequest{Code: "NPL6-JK5W"}

		err := req.Validate()
		assert.NoError(t, err)
	})

	t.Run("Success_Collection", func(t *testing.T) {
		req := ValidateCouponsRequest{Codes: []string{"NPL6-JK5W", "5M5G-R61B"}}

		err := req.Validate()
		assert.NoError(t, err)
	})

	t.Run("Error_BothCodeAndCodes", func(t *testing.T) {
		req := ValidateCouponsRequest{Code: "NPL6-JK5W", Codes: []string{"5M5G-R61B"}}

		err := req.Validate()
		assert.Error(t, err)
	})

	t.Run("Error_NeitherCodeNorCodes", func(t *testing.T) {
		req := ValidateCouponsRequest{}

		err := req.Validate()
		assert.Error(t, err)
	})
}

func TestValidateCouponsRequest_AllCodes(t *testing.T) {
	t.Run("SingleCodeWrapped", func(t *testing.T) {
		req := ValidateCouponsRequest{Code: "NPL6-JK5W"}

		assert.Equal(t, []string{"NPL6-JK5W"}, req.AllCodes())
	})

	t.Run("CollectionPassedThrough", func(t *testing.T) {
		codes := []string{"NPL6-JK5W", "5M5G-R61B"}
		req := ValidateCouponsRequest{Codes: codes}

		assert.Equal(t, codes, req.AllCodes())
	})
}

func TestNormalizeCouponsRequest_Validate(t *testing.T) {
	t.Run("Success_SingleCode", func(t *testing.T) {
		req := NormalizeCouponsRequest{Code: "npl6jk5w"}

		err := req.Validate()
		assert.NoError(t, err)
	})

	t.Run("Success_Collection", func(t *testing.T) {
		req := NormalizeCouponsRequest{Codes: []string{"npl6jk5w", "smsg-r6ib"}}

		err := req.Validate()
		assert.NoError(t, err)
	})

	t.Run("Error_BothCodeAndCodes", func(t *testing.T) {
		req := NormalizeCouponsRequest{Code: "npl6jk5w", Codes: []string{"smsg-r6ib"}}

		err := req.Validate()
		assert.Error(t, err)
	})

	t.Run("Error_NeitherCodeNorCodes", func(t *testing.T) {
		req := NormalizeCouponsRequest{}

		err := req.Validate()
		assert.Error(t, err)
	})
}

func TestPreviewCouponRequest_Validate(t *testing.T) {
	t.Run("Success_ValidShape", func(t *testing.T) {
		req := PreviewCouponRequest{Separator: "-", Parts: 2, PartLength: 4}

		err := req.Validate()
		assert.NoError(t, err)
	})

	t.Run("Success_WithPrefix", func(t *testing.T) {
		req := PreviewCouponRequest{Prefix: "SAVE", Separator: ".", Parts: 3, PartLength: 5}

		err := req.Validate()
		assert.NoError(t, err)
	})

	t.Run("Error_MissingSeparator", func(t *testing.T) {
		req := PreviewCouponRequest{Parts: 2, PartLength: 4}

		err := req.Validate()
		assert.Error(t, err)
	})

	t.Run("Error_AlphanumericSeparator", func(t *testing.T) {
		req := PreviewCouponRequest{Separator: "A", Parts: 2, PartLength: 4}

		err := req.Validate()
		assert.Error(t, err)
	})

	t.Run("Error_MultiCharSeparator", func(t *testing.T) {
		req := PreviewCouponRequest{Separator: "--", Parts: 2, PartLength: 4}

		err := req.Validate()
		assert.Error(t, err)
	})

	t.Run("Error_ZeroParts", func(t *testing.T) {
		req := PreviewCouponRequest{Separator: "-", PartLength: 4}

		err := req.Validate()
		assert.Error(t, err)
	})

	t.Run("Error_ZeroPartLength", func(t *testing.T) {
		req := PreviewCouponRequest{Separator: "-", Parts: 2}

		err := req.Validate()
		assert.Error(t, err)
	})
}

func TestExportCouponsRequest_Validate(t *testing.T) {
	t.Run("Success_MinimalRequest", func(t *testing.T) {
		req := ExportCouponsRequest{Count: 100}

		err := req.Validate()
		assert.NoError(t, err)
	})

	t.Run("Success_FullRequest", func(t *testing.T) {
		req := ExportCouponsRequest{
			Profile:    "spring-sale",
			Count:      10,
			CodeHeader: "coupon",
			UsedHeader: "redeemed",
			Filename:   "spring-batch.csv",
		}

		err := req.Validate()
		assert.NoError(t, err)
	})

	t.Run("Error_MissingCount", func(t *testing.T) {
		req := ExportCouponsRequest{}

		err := req.Validate()
		assert.Error(t, err)
	})

	t.Run("Error_NegativeCount", func(t *testing.T) {
		req := ExportCouponsRequest{Count: -5}

		err := req.Validate()
		assert.Error(t, err)
	})

	t.Run("Error_FilenameWithSlash", func(t *testing.T) {
		req := ExportCouponsRequest{Count: 1, Filename: "dir/batch.csv"}

		err := req.Validate()
		assert.Error(t, err)
	})

	t.Run("Error_FilenameWithBackslash", func(t *testing.T) {
		req := ExportCouponsRequest{Count: 1, Filename: `dir\batch.csv`}

		err := req.Validate()
		assert.Error(t, err)
	})

	t.Run("Error_FilenameWithNewline", func(t *testing.T) {
		req := ExportCouponsRequest{Count: 1, Filename: "batch\n.csv"}

		err := req.Validate()
		assert.Error(t, err)
	})
}

func TestCreateFormatProfileRequest_Validate(t *testing.T) {
	t.Run("Success_NameOnly", func(t *testing.T) {
		req := CreateFormatProfileRequest{Name: "spring-sale"}

		err := req.Validate()
		assert.NoError(t, err)
	})

	t.Run("Success_FullShape", func(t *testing.T) {
		req := CreateFormatProfileRequest{
			Name:       "bulk-codes",
			Prefix:     "BULK",
			Separator:  ".",
			Parts:      3,
			PartLength: 5,
		}

		err := req.Validate()
		assert.NoError(t, err)
	})

	t.Run("Error_MissingName", func(t *testing.T) {
		req := CreateFormatProfileRequest{Prefix: "SAVE"}

		err := req.Validate()
		assert.Error(t, err)
	})

	t.Run("Error_BlankName", func(t *testing.T) {
		req := CreateFormatProfileRequest{Name: "   "}

		err := req.Validate()
		assert.Error(t, err)
	})

	t.Run("Error_NameWithWhitespace", func(t *testing.T) {
		req := CreateFormatProfileRequest{Name: "spring-sale "}

		err := req.Validate()
		assert.Error(t, err)
	})

	t.Run("Error_AlphanumericSeparator", func(t *testing.T) {
		req := CreateFormatProfileRequest{Name: "spring-sale", Separator: "0"}

		err := req.Validate()
		assert.Error(t, err)
	})

	t.Run("Error_NegativeParts", func(t *testing.T) {
		req := CreateFormatProfileRequest{Name: "spring-sale", Parts: -1}

		err := req.Validate()
		assert.Error(t, err)
	})
}
