// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/fisheries-data/regs-tracker/db/ent/schema"
	"github.com/fisheries-data/regs-tracker/gen/ent/fishingregulation"
	"github.com/fisheries-data/regs-tracker/gen/ent/fishspecies"
	"github.com/fisheries-data/regs-tracker/gen/ent/regulationdocument"
	"github.com/fisheries-data/regs-tracker/gen/ent/waterbody"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	fishspeciesFields := schema.FishSpecies{}.Fields()
	_ = fishspeciesFields
	// fishspeciesDescCommonName is the schema descriptor for common_name field.
	fishspeciesDescCommonName := fishspeciesFields[1].Descriptor()
	// fishspecies.CommonNameValidator is a validator for the "common_name" field. It is called by the builders before save.
	fishspecies.CommonNameValidator = fishspeciesDescCommonName.Validators[0].(func(string) error)
	// fishspeciesDescIsActive is the schema descriptor for is_active field.
	fishspeciesDescIsActive := fishspeciesFields[3].Descriptor()
	// fishspecies.DefaultIsActive holds the default value on creation for the is_active field.
	fishspecies.DefaultIsActive = fishspeciesDescIsActive.Default.(bool)
	// fishspeciesDescCreatedAt is the schema descriptor for created_at field.
	fishspeciesDescCreatedAt := fishspeciesFields[4].Descriptor()
	// fishspecies.DefaultCreatedAt holds the default value on creation for the created_at field.
	fishspecies.DefaultCreatedAt = fishspeciesDescCreatedAt.Default.(func() time.Time)
	// fishspeciesDescID is the schema descriptor for id field.
	fishspeciesDescID := fishspeciesFields[0].Descriptor()
	// fishspecies.DefaultID holds the default value on creation for the id field.
	fishspecies.DefaultID = fishspeciesDescID.Default.(func() uuid.UUID)
	fishingregulationFields := schema.FishingRegulation{}.Fields()
	_ = fishingregulationFields
	// fishingregulationDescRegulationYear is the schema descriptor for regulation_year field.
	fishingregulationDescRegulationYear := fishingregulationFields[4].Descriptor()
	// fishingregulation.RegulationYearValidator is a validator for the "regulation_year" field. It is called by the builders before save.
	fishingregulation.RegulationYearValidator = fishingregulationDescRegulationYear.Validators[0].(func(int) error)
	// fishingregulationDescRegulationType is the schema descriptor for regulation_type field.
	fishingregulationDescRegulationType := fishingregulationFields[5].Descriptor()
	// fishingregulation.DefaultRegulationType holds the default value on creation for the regulation_type field.
	fishingregulation.DefaultRegulationType = fishingregulationDescRegulationType.Default.(string)
	// fishingregulation.RegulationTypeValidator is a validator for the "regulation_type" field. It is called by the builders before save.
	fishingregulation.RegulationTypeValidator = fishingregulationDescRegulationType.Validators[0].(func(string) error)
	// fishingregulationDescProtectedSlotExceptions is the schema descriptor for protected_slot_exceptions field.
	fishingregulationDescProtectedSlotExceptions := fishingregulationFields[14].Descriptor()
	// fishingregulation.DefaultProtectedSlotExceptions holds the default value on creation for the protected_slot_exceptions field.
	fishingregulation.DefaultProtectedSlotExceptions = fishingregulationDescProtectedSlotExceptions.Default.(int)
	// fishingregulationDescYearRound is the schema descriptor for year_round field.
	fishingregulationDescYearRound := fishingregulationFields[17].Descriptor()
	// fishingregulation.DefaultYearRound holds the default value on creation for the year_round field.
	fishingregulation.DefaultYearRound = fishingregulationDescYearRound.Default.(bool)
	// fishingregulationDescCatchAndRelease is the schema descriptor for catch_and_release field.
	fishingregulationDescCatchAndRelease := fishingregulationFields[18].Descriptor()
	// fishingregulation.DefaultCatchAndRelease holds the default value on creation for the catch_and_release field.
	fishingregulation.DefaultCatchAndRelease = fishingregulationDescCatchAndRelease.Default.(bool)
	// fishingregulationDescIsActive is the schema descriptor for is_active field.
	fishingregulationDescIsActive := fishingregulationFields[20].Descriptor()
	// fishingregulation.DefaultIsActive holds the default value on creation for the is_active field.
	fishingregulation.DefaultIsActive = fishingregulationDescIsActive.Default.(bool)
	// fishingregulationDescNeedsReview is the schema descriptor for needs_review field.
	fishingregulationDescNeedsReview := fishingregulationFields[21].Descriptor()
	// fishingregulation.DefaultNeedsReview holds the default value on creation for the needs_review field.
	fishingregulation.DefaultNeedsReview = fishingregulationDescNeedsReview.Default.(bool)
	// fishingregulationDescCreatedAt is the schema descriptor for created_at field.
	fishingregulationDescCreatedAt := fishingregulationFields[22].Descriptor()
	// fishingregulation.DefaultCreatedAt holds the default value on creation for the created_at field.
	fishingregulation.DefaultCreatedAt = fishingregulationDescCreatedAt.Default.(func() time.Time)
	// fishingregulationDescUpdatedAt is the schema descriptor for updated_at field.
	fishingregulationDescUpdatedAt := fishingregulationFields[23].Descriptor()
	// fishingregulation.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	fishingregulation.DefaultUpdatedAt = fishingregulationDescUpdatedAt.Default.(func() time.Time)
	// fishingregulation.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	fishingregulation.UpdateDefaultUpdatedAt = fishingregulationDescUpdatedAt.UpdateDefault.(func() time.Time)
	// fishingregulationDescID is the schema descriptor for id field.
	fishingregulationDescID := fishingregulationFields[0].Descriptor()
	// fishingregulation.DefaultID holds the default value on creation for the id field.
	fishingregulation.DefaultID = fishingregulationDescID.Default.(func() uuid.UUID)
	regulationdocumentFields := schema.RegulationDocument{}.Fields()
	_ = regulationdocumentFields
	// regulationdocumentDescFilename is the schema descriptor for filename field.
	regulationdocumentDescFilename := regulationdocumentFields[1].Descriptor()
	// regulationdocument.FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	regulationdocument.FilenameValidator = regulationdocumentDescFilename.Validators[0].(func(string) error)
	// regulationdocumentDescDocumentType is the schema descriptor for document_type field.
	regulationdocumentDescDocumentType := regulationdocumentFields[2].Descriptor()
	// regulationdocument.DocumentTypeValidator is a validator for the "document_type" field. It is called by the builders before save.
	regulationdocument.DocumentTypeValidator = func() func(string) error {
		validators := regulationdocumentDescDocumentType.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(document_type string) error {
			for _, fn := range fns {
				if err := fn(document_type); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// regulationdocumentDescFileSize is the schema descriptor for file_size field.
	regulationdocumentDescFileSize := regulationdocumentFields[3].Descriptor()
	// regulationdocument.FileSizeValidator is a validator for the "file_size" field. It is called by the builders before save.
	regulationdocument.FileSizeValidator = regulationdocumentDescFileSize.Validators[0].(func(int64) error)
	// regulationdocumentDescProcessingStatus is the schema descriptor for processing_status field.
	regulationdocumentDescProcessingStatus := regulationdocumentFields[4].Descriptor()
	// regulationdocument.DefaultProcessingStatus holds the default value on creation for the processing_status field.
	regulationdocument.DefaultProcessingStatus = regulationdocumentDescProcessingStatus.Default.(string)
	// regulationdocument.ProcessingStatusValidator is a validator for the "processing_status" field. It is called by the builders before save.
	regulationdocument.ProcessingStatusValidator = regulationdocumentDescProcessingStatus.Validators[0].(func(string) error)
	// regulationdocumentDescStateCode is the schema descriptor for state_code field.
	regulationdocumentDescStateCode := regulationdocumentFields[5].Descriptor()
	// regulationdocument.StateCodeValidator is a validator for the "state_code" field. It is called by the builders before save.
	regulationdocument.StateCodeValidator = func() func(string) error {
		validators := regulationdocumentDescStateCode.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
			validators[2].(func(string) error),
		}
		return func(state_code string) error {
			for _, fn := range fns {
				if err := fn(state_code); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// regulationdocumentDescRegulationYear is the schema descriptor for regulation_year field.
	regulationdocumentDescRegulationYear := regulationdocumentFields[6].Descriptor()
	// regulationdocument.RegulationYearValidator is a validator for the "regulation_year" field. It is called by the builders before save.
	regulationdocument.RegulationYearValidator = regulationdocumentDescRegulationYear.Validators[0].(func(int) error)
	// regulationdocumentDescUploadedAt is the schema descriptor for uploaded_at field.
	regulationdocumentDescUploadedAt := regulationdocumentFields[9].Descriptor()
	// regulationdocument.DefaultUploadedAt holds the default value on creation for the uploaded_at field.
	regulationdocument.DefaultUploadedAt = regulationdocumentDescUploadedAt.Default.(func() time.Time)
	// regulationdocumentDescUpdatedAt is the schema descriptor for updated_at field.
	regulationdocumentDescUpdatedAt := regulationdocumentFields[11].Descriptor()
	// regulationdocument.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	regulationdocument.DefaultUpdatedAt = regulationdocumentDescUpdatedAt.Default.(func() time.Time)
	// regulationdocument.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	regulationdocument.UpdateDefaultUpdatedAt = regulationdocumentDescUpdatedAt.UpdateDefault.(func() time.Time)
	// regulationdocumentDescID is the schema descriptor for id field.
	regulationdocumentDescID := regulationdocumentFields[0].Descriptor()
	// regulationdocument.DefaultID holds the default value on creation for the id field.
	regulationdocument.DefaultID = regulationdocumentDescID.Default.(func() uuid.UUID)
	waterbodyFields := schema.WaterBody{}.Fields()
	_ = waterbodyFields
	// waterbodyDescName is the schema descriptor for name field.
	waterbodyDescName := waterbodyFields[1].Descriptor()
	// waterbody.NameValidator is a validator for the "name" field. It is called by the builders before save.
	waterbody.NameValidator = waterbodyDescName.Validators[0].(func(string) error)
	// waterbodyDescNormalizedName is the schema descriptor for normalized_name field.
	waterbodyDescNormalizedName := waterbodyFields[2].Descriptor()
	// waterbody.NormalizedNameValidator is a validator for the "normalized_name" field. It is called by the builders before save.
	waterbody.NormalizedNameValidator = waterbodyDescNormalizedName.Validators[0].(func(string) error)
	// waterbodyDescWaterBodyType is the schema descriptor for water_body_type field.
	waterbodyDescWaterBodyType := waterbodyFields[3].Descriptor()
	// waterbody.DefaultWaterBodyType holds the default value on creation for the water_body_type field.
	waterbody.DefaultWaterBodyType = waterbodyDescWaterBodyType.Default.(string)
	// waterbody.WaterBodyTypeValidator is a validator for the "water_body_type" field. It is called by the builders before save.
	waterbody.WaterBodyTypeValidator = waterbodyDescWaterBodyType.Validators[0].(func(string) error)
	// waterbodyDescStateCode is the schema descriptor for state_code field.
	waterbodyDescStateCode := waterbodyFields[4].Descriptor()
	// waterbody.StateCodeValidator is a validator for the "state_code" field. It is called by the builders before save.
	waterbody.StateCodeValidator = func() func(string) error {
		validators := waterbodyDescStateCode.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
			validators[2].(func(string) error),
		}
		return func(state_code string) error {
			for _, fn := range fns {
				if err := fn(state_code); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// waterbodyDescIsActive is the schema descriptor for is_active field.
	waterbodyDescIsActive := waterbodyFields[6].Descriptor()
	// waterbody.DefaultIsActive holds the default value on creation for the is_active field.
	waterbody.DefaultIsActive = waterbodyDescIsActive.Default.(bool)
	// waterbodyDescCreatedAt is the schema descriptor for created_at field.
	waterbodyDescCreatedAt := waterbodyFields[7].Descriptor()
	// waterbody.DefaultCreatedAt holds the default value on creation for the created_at field.
	waterbody.DefaultCreatedAt = waterbodyDescCreatedAt.Default.(func() time.Time)
	// waterbodyDescUpdatedAt is the schema descriptor for updated_at field.
	waterbodyDescUpdatedAt := waterbodyFields[8].Descriptor()
	// waterbody.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	waterbody.DefaultUpdatedAt = waterbodyDescUpdatedAt.Default.(func() time.Time)
	// waterbody.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	waterbody.UpdateDefaultUpdatedAt = waterbodyDescUpdatedAt.UpdateDefault.(func() time.Time)
	// waterbodyDescID is the schema descriptor for id field.
	waterbodyDescID := waterbodyFields[0].Descriptor()
	// waterbody.DefaultID holds the default value on creation for the id field.
	waterbody.DefaultID = waterbodyDescID.Default.(func() uuid.UUID)
}
