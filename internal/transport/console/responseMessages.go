package console

const (
	rule50 string = "=================================================="
	rule60 string = "============================================================"
	dash50 string = "--------------------------------------------------"
	dash60 string = "------------------------------------------------------------"

	missingCredentials string = "❌ Error: Missing required environment variables\nPlease set: %s\n"
	fatalInput         string = "❌ Error: %s\n"

	loadStats string = "Total books in export: %d\nBooks you've read: %d\nSkipping %d unread books\n\n"

	importHeader string = "📚 Goodreads to Capacities Import Tool\nSpace ID: %s\nStructure ID: %s (Book)\nTotal books to import: %d\n"

	previewHeader string = "📋 Preview of first %d books to be imported:\n\n"
	previewBook   string = "Book #%d: %s\n" +
		"  Author: %s\n" +
		"  ISBN: %s\n" +
		"  Rating: %s\n" +
		"  Pages: %s\n" +
		"  Date Read: %s\n" +
		"  Publisher: %s\n" +
		"  Bookshelves: %s\n" +
		"  Review: %s\n"

	noRating  string = "No rating"
	unknown   string = "Unknown"
	notRead   string = "Not read"
	noShelves string = "None"

	confirmPrompt string = "\nDo you want to proceed with import? (y/n, or 'test' for first %d only): "
	testMode      string = "\n🧪 Test mode: Importing first %d books only...\n"
	fullImport    string = "\n🚀 Starting full import...\n"
	cancelled     string = "\n❌ Import cancelled.\n"

	importedBook string = "[%d/%d] Successfully imported: %s\n"
	failedBook   string = "FAILED %s: %d - %s\n"
	erroredBook  string = "Error on %s: %v\n"
	warning      string = "Warning: %s\n"
	interrupted  string = "\n⚠️  Import interrupted: %v\n"

	importSummary    string = "Imported: %d, failed: %d, errors: %d (of %d)\n"
	processCompleted string = "✅ Process completed!\n"

	finderHeader       string = "🔍 Capacities Property Finder\n"
	spaceInfoRetrieved string = "✅ Success! Space info retrieved\n"
	structuresFound    string = "\n📋 Found %d structure(s) in your space:\n\n"
	structureDetails   string = "🏗️  Structure: %s\n   ID: %s\n   Plural: %s\n"
	propertiesFound    string = "   📝 %d Properties:\n"
	propertyDetails    string = "      - %s (%s)\n        ID: %s\n"
	noProperties       string = "   📝 No properties found\n"
	noStructures       string = "No structures found in this space\n"
	bookDetails        string = "📚 Book Structure Details:\n"
	bookStructureID    string = "Structure ID: %s\n"
	propertyIDsHeader  string = "\nProperty IDs for the property map:\n"
	propertyIDLine     string = "\"%s\": \"%s\",\n"
	envLinesHeader     string = "\nAs .env lines:\n"
	envLine            string = "%s=%s\n"
	apiError           string = "❌ Error %d: %s\n"
	apiException       string = "❌ Exception: %v\n"
)
