package taxonomy

// Category names for the built-in taxonomy.
const (
	CategoryProgrammingLanguages = "Programming Languages"
	CategoryDataScienceLibraries = "Data Science Libraries"
	CategoryWebFrameworks        = "Web Development Frameworks"
	CategoryDevelopmentTools     = "Development Tools"
	CategoryBusinessIntelligence = "Business Intelligence"
	CategoryDatabases            = "Database Technologies"
	CategoryCloudPlatforms       = "Cloud Platforms"
	CategoryBigData              = "Big Data Technologies"
	CategoryMachineLearning      = "Machine Learning Concepts"
	CategoryAIDomains            = "Artificial Intelligence Domains"
	CategoryMLOps                = "MLOps and Model Management"
	CategoryProfessionalSkills   = "Professional Skills"
)

// skillDef is a compact row in the built-in dataset: canonical display name
// plus optional synonyms.
type skillDef struct {
	name     string
	synonyms []string
}

// defaultCategories holds the curated skill dataset. Synonyms cover the
// variants that show up in real resumes and job postings (golang, k8s, js);
// canonical names use conventional display casing.
var defaultCategories = map[string][]skillDef{
	CategoryProgrammingLanguages: {
		{name: "Python"},
		{name: "Java"},
		{name: "C++", synonyms: []string{"cpp"}},
		{name: "C"},
		{name: "C#", synonyms: []string{"csharp"}},
		{name: "Go", synonyms: []string{"golang", "go lang"}},
		{name: "TypeScript", synonyms: []string{"ts"}},
		{name: "JavaScript", synonyms: []string{"js"}},
		{name: "SQL"},
		{name: "R"},
		{name: "Bash"},
		{name: "HTML"},
		{name: "CSS"},
		{name: "Kotlin"},
		{name: "Swift"},
		{name: "Dart"},
		{name: "Rust"},
		{name: "Scala"},
		{name: "PHP"},
	},
	CategoryDataScienceLibraries: {
		{name: "NumPy"},
		{name: "Pandas"},
		{name: "Matplotlib"},
		{name: "Seaborn"},
		{name: "Plotly"},
		{name: "Scikit-learn", synonyms: []string{"sklearn", "scikit learn"}},
		{name: "XGBoost"},
		{name: "LightGBM"},
		{name: "CatBoost"},
		{name: "TensorFlow"},
		{name: "Keras"},
		{name: "PyTorch"},
		{name: "Statsmodels"},
		{name: "OpenCV"},
		{name: "NLTK"},
		{name: "spaCy"},
		{name: "Transformers"},
		{name: "Gensim"},
		{name: "Dask"},
		{name: "Polars"},
	},
	CategoryWebFrameworks: {
		{name: "Flask"},
		{name: "Django"},
		{name: "FastAPI"},
		{name: "Express", synonyms: []string{"express.js", "expressjs"}},
		{name: "Next.js", synonyms: []string{"nextjs"}},
		{name: "Nuxt.js", synonyms: []string{"nuxtjs"}},
		{name: "Spring Boot"},
		{name: "Ruby on Rails", synonyms: []string{"rails"}},
		{name: "Laravel"},
		{name: "Svelte"},
		{name: "Vue.js", synonyms: []string{"vue", "vuejs"}},
		{name: "React", synonyms: []string{"react.js", "reactjs"}},
		{name: "Angular", synonyms: []string{"angularjs"}},
		{name: "Node.js", synonyms: []string{"node", "nodejs"}},
		{name: "Blazor"},
	},
	CategoryDevelopmentTools: {
		{name: "Git"},
		{name: "GitHub"},
		{name: "GitLab"},
		{name: "Bitbucket"},
		{name: "Docker"},
		{name: "Kubernetes", synonyms: []string{"k8s"}},
		{name: "Jenkins"},
		{name: "Ansible"},
		{name: "Vagrant"},
		{name: "Jira"},
		{name: "Postman"},
		{name: "PowerShell"},
		{name: "Linux"},
		{name: "VS Code", synonyms: []string{"vscode", "visual studio code"}},
		{name: "PyCharm"},
		{name: "IntelliJ"},
		{name: "Android Studio"},
	},
	CategoryBusinessIntelligence: {
		{name: "Excel"},
		{name: "Power BI", synonyms: []string{"powerbi"}},
		{name: "Tableau"},
		{name: "Looker"},
		{name: "Metabase"},
		{name: "QlikView"},
		{name: "Superset"},
		{name: "Google Data Studio"},
		{name: "Databricks"},
		{name: "Alteryx"},
		{name: "Domo"},
	},
	CategoryDatabases: {
		{name: "MySQL"},
		{name: "PostgreSQL", synonyms: []string{"postgres"}},
		{name: "SQLite"},
		{name: "MongoDB", synonyms: []string{"mongo"}},
		{name: "Redis"},
		{name: "Cassandra"},
		{name: "Neo4j"},
		{name: "Oracle"},
		{name: "DynamoDB"},
		{name: "BigQuery"},
		{name: "Snowflake"},
		{name: "ClickHouse"},
		{name: "Elasticsearch"},
	},
	CategoryCloudPlatforms: {
		{name: "AWS", synonyms: []string{"amazon web services"}},
		{name: "Azure"},
		{name: "GCP", synonyms: []string{"google cloud", "google cloud platform"}},
		{name: "Heroku"},
		{name: "Vercel"},
		{name: "Netlify"},
		{name: "Firebase"},
		{name: "Supabase"},
		{name: "DigitalOcean"},
		{name: "Linode"},
		{name: "Cloudflare"},
	},
	CategoryBigData: {
		{name: "Hadoop"},
		{name: "Spark", synonyms: []string{"apache spark", "pyspark"}},
		{name: "Hive"},
		{name: "Kafka", synonyms: []string{"apache kafka"}},
		{name: "Flink"},
		{name: "Airflow", synonyms: []string{"apache airflow"}},
		{name: "dbt"},
		{name: "Presto"},
		{name: "Trino"},
	},
	CategoryMachineLearning: {
		{name: "Machine Learning"},
		{name: "Deep Learning"},
		{name: "Supervised Learning"},
		{name: "Unsupervised Learning"},
		{name: "Reinforcement Learning"},
		{name: "Model Evaluation"},
		{name: "Cross Validation"},
		{name: "Feature Engineering"},
		{name: "Model Deployment"},
		{name: "Dimensionality Reduction"},
		{name: "Ensemble Methods"},
		{name: "AutoML"},
		{name: "Hyperparameter Tuning"},
	},
	CategoryAIDomains: {
		{name: "Natural Language Processing", synonyms: []string{"nlp"}},
		{name: "Computer Vision"},
		{name: "Optical Character Recognition", synonyms: []string{"ocr"}},
		{name: "Speech Recognition"},
		{name: "Large Language Models", synonyms: []string{"llms"}},
		{name: "Recommendation Systems", synonyms: []string{"recommender systems"}},
		{name: "Chatbots"},
		{name: "Generative AI", synonyms: []string{"genai"}},
		{name: "Prompt Engineering"},
	},
	CategoryMLOps: {
		{name: "MLflow"},
		{name: "TensorBoard"},
		{name: "DVC", synonyms: []string{"data version control"}},
		{name: "SageMaker"},
		{name: "TFX"},
		{name: "ONNX"},
		{name: "TorchServe"},
		{name: "Gradio"},
		{name: "Streamlit"},
		{name: "Kubeflow"},
		{name: "Feast"},
	},
	CategoryProfessionalSkills: {
		{name: "Project Management"},
		{name: "Team Leadership"},
		{name: "Communication"},
		{name: "Problem Solving"},
		{name: "Analytical Thinking"},
		{name: "Stakeholder Management"},
		{name: "Agile Methodology", synonyms: []string{"agile"}},
		{name: "Scrum"},
	},
}

// defaultCategoryOrder keeps Default() deterministic.
var defaultCategoryOrder = []string{
	CategoryProgrammingLanguages,
	CategoryDataScienceLibraries,
	CategoryWebFrameworks,
	CategoryDevelopmentTools,
	CategoryBusinessIntelligence,
	CategoryDatabases,
	CategoryCloudPlatforms,
	CategoryBigData,
	CategoryMachineLearning,
	CategoryAIDomains,
	CategoryMLOps,
	CategoryProfessionalSkills,
}

// Default returns the built-in taxonomy. The dataset is validated at build
// time by construction, so a failure here is a programming error.
func Default() *Taxonomy {
	var entries []Entry
	for _, category := range defaultCategoryOrder {
		for _, def := range defaultCategories[category] {
			entries = append(entries, Entry{
				CanonicalName: def.name,
				Category:      category,
				Synonyms:      def.synonyms,
			})
		}
	}

	t, err := New(entries)
	if err != nil {
		panic("taxonomy: built-in dataset invalid: " + err.Error())
	}
	return t
}
