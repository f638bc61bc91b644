package recommend

import "github.com/jonathan/smartmatch/internal/types"

// defaultEntries is the curated development-advice dataset, keyed by
// canonical skill name. A skill absent here yields ErrNotFound; advice beyond
// this dataset comes from the LLM enricher, never from fabricated entries.
var defaultEntries = map[string]types.Recommendation{
	"Python": {
		Description:      "High-level programming language essential for data science, web development, and automation. Offers excellent career opportunities across multiple domains.",
		LearningResource: "https://www.python.org/about/gettingstarted/",
		Priority:         "High",
	},
	"Machine Learning": {
		Description:      "Critical field of artificial intelligence enabling systems to learn from data without explicit programming. Essential for modern data science and AI roles.",
		LearningResource: "https://www.coursera.org/learn/machine-learning",
		Priority:         "High",
	},
	"SQL": {
		Description:      "Standard language for managing and querying relational databases. Fundamental skill for data analysis, backend development, and business intelligence.",
		LearningResource: "https://www.w3schools.com/sql/",
		Priority:         "High",
	},
	"Pandas": {
		Description:      "Essential Python library for data manipulation and analysis. Critical for data cleaning, transformation, and exploratory data analysis workflows.",
		LearningResource: "https://pandas.pydata.org/docs/getting_started/intro_tutorials/index.html",
		Priority:         "High",
	},
	"TensorFlow": {
		Description:      "Industry-standard open-source machine learning framework by Google. Essential for deep learning and neural network development projects.",
		LearningResource: "https://www.tensorflow.org/learn",
		Priority:         "Medium",
	},
	"Docker": {
		Description:      "Containerization platform essential for modern DevOps practices. Critical for application deployment, scalability, and development environment consistency.",
		LearningResource: "https://docs.docker.com/get-started/",
		Priority:         "High",
	},
	"React": {
		Description:      "Leading JavaScript library for building user interfaces. Highly demanded for frontend web development with component-based architecture.",
		LearningResource: "https://react.dev/learn",
		Priority:         "High",
	},
	"AWS": {
		Description:      "Amazon Web Services - leading cloud computing platform. Essential for scalable application deployment, data storage, and modern infrastructure management.",
		LearningResource: "https://aws.amazon.com/getting-started/",
		Priority:         "High",
	},
	"Tableau": {
		Description:      "Industry-leading data visualization tool for creating interactive dashboards and reports. Essential for business intelligence and data analytics roles.",
		LearningResource: "https://www.tableau.com/learn",
		Priority:         "Medium",
	},
	"Git": {
		Description:      "Version control system fundamental for collaborative software development. Essential for tracking changes, managing code repositories, and team workflows.",
		LearningResource: "https://git-scm.com/docs/gittutorial",
		Priority:         "High",
	},
	"Scikit-learn": {
		Description:      "Comprehensive Python library for machine learning with efficient tools for data mining and analysis. Essential for practical ML implementation.",
		LearningResource: "https://scikit-learn.org/stable/getting_started.html",
		Priority:         "Medium",
	},
	"JavaScript": {
		Description:      "Versatile programming language for web development, both frontend and backend. Essential for modern web applications and full-stack development.",
		LearningResource: "https://developer.mozilla.org/en-US/docs/Web/JavaScript/Guide",
		Priority:         "High",
	},
	"NumPy": {
		Description:      "Fundamental Python library for numerical computing with support for large arrays and mathematical functions. Foundation for data science workflows.",
		LearningResource: "https://numpy.org/doc/stable/user/quickstart.html",
		Priority:         "Medium",
	},
	"Communication": {
		Description:      "Essential professional skill for explaining technical concepts, collaborating with teams, and presenting findings to stakeholders effectively.",
		LearningResource: "https://www.coursera.org/learn/communication-skills",
		Priority:         "High",
	},
	"Deep Learning": {
		Description:      "Advanced subset of machine learning using neural networks with multiple layers. Essential for AI applications including NLP and computer vision.",
		LearningResource: "https://www.deeplearning.ai/",
		Priority:         "Medium",
	},
}
